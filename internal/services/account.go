package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"devportal/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// AccountServiceConfig holds settings for invite creation.
type AccountServiceConfig struct {
	IdentityPoolRegion string
	PortalURL          string
	Timeout            time.Duration
}

type accountService struct {
	repo         domain.AccountRepository
	emailService domain.EmailService
	cfg          AccountServiceConfig
	now          func() time.Time
	newID        func() string
}

// NewAccountService creates an AccountService backed by repo. emailService may be nil,
// in which case invites are recorded without sending mail.
func NewAccountService(repo domain.AccountRepository, emailService domain.EmailService, cfg AccountServiceConfig) domain.AccountService {
	return &accountService{
		repo:         repo,
		emailService: emailService,
		cfg:          cfg,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

func (s *accountService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.cfg.Timeout)
}

func (s *accountService) ListPendingInvites(ctx context.Context) ([]*domain.Account, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	accounts, err := s.repo.ListPendingInvites(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending invites: %w", err)
	}
	return accounts, nil
}

func (s *accountService) CreateInviteByEmail(ctx context.Context, email, inviter string) (*domain.Account, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegexp.MatchString(email) {
		return nil, domain.ErrInvalidEmail
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	acc := &domain.Account{
		IdentityPoolID: fmt.Sprintf("%s:%s", s.cfg.IdentityPoolRegion, s.newID()),
		EmailAddress:   email,
		DateInvited:    s.now().UTC(),
		Inviter:        inviter,
	}
	if err := s.repo.CreateInvite(ctx, acc); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	if s.emailService != nil {
		data := &domain.AccountInviteEmailData{Email: email, Inviter: inviter, PortalURL: s.cfg.PortalURL}
		if err := s.emailService.SendAccountInvite(ctx, data); err != nil {
			// An invite nobody received must not linger in the list.
			if delErr := s.repo.DeleteInvite(ctx, acc.IdentityPoolID); delErr != nil {
				err = errors.Join(err, fmt.Errorf("rollback invite %s: %w", acc.IdentityPoolID, delErr))
			}
			return nil, domain.Wrap(domain.KindUnavailable, "could not send the invitation email", err)
		}
	}
	return acc, nil
}

func (s *accountService) DeleteInviteByIdentityPoolID(ctx context.Context, identityPoolID string) error {
	identityPoolID = strings.TrimSpace(identityPoolID)
	if identityPoolID == "" {
		return domain.E(domain.KindInvalidArgument, "identity pool id is required")
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.repo.DeleteInvite(ctx, identityPoolID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete invite: %w", err)
	}
	return nil
}
