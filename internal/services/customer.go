package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"devportal/internal/domain"
)

type customerController struct {
	repo   domain.AccountRepository
	logger *slog.Logger
}

// NewCustomerController returns the CustomerController that decides pending account requests.
func NewCustomerController(repo domain.AccountRepository, logger *slog.Logger) domain.CustomerController {
	return &customerController{repo: repo, logger: logger}
}

func (c *customerController) ListPendingRequests(ctx context.Context) ([]*domain.Account, error) {
	accounts, err := c.repo.ListPendingRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}
	return accounts, nil
}

// DenyAccountPendingRequest removes the user's pending request. Denying a request that
// no longer exists returns domain.ErrNotFound.
func (c *customerController) DenyAccountPendingRequest(ctx context.Context, userID string) error {
	if err := c.repo.DeletePendingRequest(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.E(domain.KindNotFound, "no pending request for user")
		}
		return fmt.Errorf("failed to deny pending request: %w", err)
	}
	c.logger.InfoContext(ctx, "denied pending account request", "user_id", userID)
	return nil
}
