// Package redis caches account listings in Redis in front of another AccountRepository.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"devportal/internal/domain"
)

const pendingInvitesKey = "devportal:accounts:pending-invites"

// Client is the subset of *goredis.Client used by the cache.
type Client interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

type cachedAccountRepository struct {
	next   domain.AccountRepository
	rdb    Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedAccountRepository wraps next with a read-through cache of the pending-invite
// listing. Mutations of invites invalidate the entry. Cache failures are logged and
// fall through to next.
func NewCachedAccountRepository(next domain.AccountRepository, rdb Client, ttl time.Duration, logger *slog.Logger) domain.AccountRepository {
	return &cachedAccountRepository{next: next, rdb: rdb, ttl: ttl, logger: logger}
}

func (r *cachedAccountRepository) ListPendingInvites(ctx context.Context) ([]*domain.Account, error) {
	b, err := r.rdb.Get(ctx, pendingInvitesKey).Bytes()
	if err == nil {
		var accounts []*domain.Account
		if jsonErr := json.Unmarshal(b, &accounts); jsonErr == nil {
			return accounts, nil
		}
		r.logger.WarnContext(ctx, "discarding undecodable cache entry", "key", pendingInvitesKey)
	} else if !errors.Is(err, goredis.Nil) {
		r.logger.WarnContext(ctx, "cache read failed", "key", pendingInvitesKey, "err", err)
	}

	accounts, err := r.next.ListPendingInvites(ctx)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(accounts); err == nil {
		if err := r.rdb.Set(ctx, pendingInvitesKey, b, r.ttl).Err(); err != nil {
			r.logger.WarnContext(ctx, "cache write failed", "key", pendingInvitesKey, "err", err)
		}
	}
	return accounts, nil
}

func (r *cachedAccountRepository) CreateInvite(ctx context.Context, acc *domain.Account) error {
	if err := r.next.CreateInvite(ctx, acc); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *cachedAccountRepository) DeleteInvite(ctx context.Context, identityPoolID string) error {
	if err := r.next.DeleteInvite(ctx, identityPoolID); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *cachedAccountRepository) ListPendingRequests(ctx context.Context) ([]*domain.Account, error) {
	return r.next.ListPendingRequests(ctx)
}

func (r *cachedAccountRepository) DeletePendingRequest(ctx context.Context, userID string) error {
	return r.next.DeletePendingRequest(ctx, userID)
}

func (r *cachedAccountRepository) invalidate(ctx context.Context) {
	if err := r.rdb.Del(ctx, pendingInvitesKey).Err(); err != nil {
		r.logger.WarnContext(ctx, "cache invalidation failed", "key", pendingInvitesKey, "err", err)
	}
}
