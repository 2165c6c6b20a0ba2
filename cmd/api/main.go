// Command api serves the developer portal admin API.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v5"
	_ "github.com/lib/pq"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"devportal/config"
	_ "devportal/docs"
	"devportal/internal/adapters/auth"
	"devportal/internal/adapters/email"
	delivery "devportal/internal/delivery/http"
	"devportal/internal/delivery/http/controllers"
	"devportal/internal/domain"
	"devportal/internal/repository/postgres"
	"devportal/internal/repository/redis"
	"devportal/internal/services"
)

const (
	shutdownTimeout  = 15 * time.Second
	dbConnectTimeout = 30 * time.Second
)

// @title Developer Portal Admin API
// @version 1.0
// @description Account administration for the developer portal.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	ping := func() (struct{}, error) {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return struct{}{}, db.PingContext(pingCtx)
	}
	_, err = backoff.Retry(ctx, ping,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(dbConnectTimeout),
		backoff.WithNotify(func(err error, next time.Duration) {
			logger.Warn("database not ready", "err", err, "retry_in", next)
		}),
	)
	if err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	var repo domain.AccountRepository = postgres.NewAccountRepository(db)
	if cfg.RedisURL != "" {
		opts, err := goredis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("parse redis url: %w", err)
		}
		rdb := goredis.NewClient(opts)
		defer rdb.Close()
		repo = redis.NewCachedAccountRepository(repo, rdb, cfg.PendingInviteCacheTTL, logger)
		logger.Info("pending invite cache enabled", "ttl", cfg.PendingInviteCacheTTL)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AccessKeyID,
			SecretAccessKey:    cfg.Email.SecretAccessKey,
			InsecureSkipVerify: cfg.Email.InsecureSkipVerify,
		},
	})
	if err != nil {
		return fmt.Errorf("create mailer: %w", err)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	accountService := services.NewAccountService(repo, emailService, services.AccountServiceConfig{
		IdentityPoolRegion: cfg.IdentityPoolRegion,
		PortalURL:          cfg.PortalURL,
		Timeout:            cfg.RequestTimeout,
	})
	customerController := services.NewCustomerController(repo, logger)
	accountController := controllers.NewAccountController(logger, accountService, customerController)

	router := delivery.NewRouter(accountController, auth.NewJWTVerifier(cfg.JWTSecret), cfg.AllowedOrigins, logger)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down server")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
