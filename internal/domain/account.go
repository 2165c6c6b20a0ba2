package domain

import (
	"context"
	"time"
)

// AccountStatus is the lifecycle stage of a portal account.
type AccountStatus string

const (
	AccountPendingInvite  AccountStatus = "pending_invite"
	AccountPendingRequest AccountStatus = "pending_request"
	AccountRegistered     AccountStatus = "registered"
)

// Account is a developer portal account. Pending invites are addressed by IdentityPoolID;
// pending requests by UserID.
// swagger:model Account
type Account struct {
	IdentityPoolID string        `json:"identityPoolId"`
	UserID         string        `json:"userId,omitempty"`
	EmailAddress   string        `json:"emailAddress"`
	DateInvited    time.Time     `json:"dateInvited"`
	Inviter        string        `json:"inviter"`
	DateRequested  *time.Time    `json:"dateRequested,omitempty"`
	Status         AccountStatus `json:"status"`
}

// AccountRepository defines storage operations for accounts.
type AccountRepository interface {
	ListPendingInvites(ctx context.Context) ([]*Account, error)
	CreateInvite(ctx context.Context, acc *Account) error
	DeleteInvite(ctx context.Context, identityPoolID string) error
	ListPendingRequests(ctx context.Context) ([]*Account, error)
	DeletePendingRequest(ctx context.Context, userID string) error
}

// AccountService is the server-side business logic for pending invites.
type AccountService interface {
	ListPendingInvites(ctx context.Context) ([]*Account, error)
	CreateInviteByEmail(ctx context.Context, email, inviter string) (*Account, error)
	DeleteInviteByIdentityPoolID(ctx context.Context, identityPoolID string) error
}

// CustomerController owns account request decisions.
type CustomerController interface {
	ListPendingRequests(ctx context.Context) ([]*Account, error)
	DenyAccountPendingRequest(ctx context.Context, userID string) error
}

// AccountServiceClient is the admin UI's view of the account API.
// Failures are *Error values whose Detail is shown to the administrator.
type AccountServiceClient interface {
	FetchPendingInviteAccounts(ctx context.Context) ([]Account, error)
	CreateInviteByEmail(ctx context.Context, email string) error
	DeleteInviteByIdentityPoolID(ctx context.Context, identityPoolID string) error
}
