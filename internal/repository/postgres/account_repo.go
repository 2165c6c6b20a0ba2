package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"devportal/internal/domain"
)

const pqUniqueViolation = "23505"

type accountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) domain.AccountRepository {
	return &accountRepository{DB: db}
}

func (r *accountRepository) ListPendingInvites(ctx context.Context) ([]*domain.Account, error) {
	query := `
		SELECT identity_pool_id, email_address, date_invited, inviter
		FROM accounts
		WHERE status = $1
		ORDER BY date_invited DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, domain.AccountPendingInvite)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		a := &domain.Account{Status: domain.AccountPendingInvite}
		var inviter sql.NullString
		if err := rows.Scan(&a.IdentityPoolID, &a.EmailAddress, &a.DateInvited, &inviter); err != nil {
			return nil, err
		}
		a.Inviter = inviter.String
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *accountRepository) CreateInvite(ctx context.Context, a *domain.Account) error {
	query := `
		INSERT INTO accounts (identity_pool_id, email_address, status, date_invited, inviter)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.DB.ExecContext(ctx, query, a.IdentityPoolID, a.EmailAddress, domain.AccountPendingInvite, a.DateInvited, a.Inviter)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	a.Status = domain.AccountPendingInvite
	return nil
}

func (r *accountRepository) DeleteInvite(ctx context.Context, identityPoolID string) error {
	query := `DELETE FROM accounts WHERE identity_pool_id = $1 AND status = $2`
	result, err := r.DB.ExecContext(ctx, query, identityPoolID, domain.AccountPendingInvite)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *accountRepository) ListPendingRequests(ctx context.Context) ([]*domain.Account, error) {
	query := `
		SELECT identity_pool_id, user_id, email_address, date_requested
		FROM accounts
		WHERE status = $1
		ORDER BY date_requested ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, domain.AccountPendingRequest)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		a := &domain.Account{Status: domain.AccountPendingRequest}
		var requested sql.NullTime
		if err := rows.Scan(&a.IdentityPoolID, &a.UserID, &a.EmailAddress, &requested); err != nil {
			return nil, err
		}
		if requested.Valid {
			t := requested.Time
			a.DateRequested = &t
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *accountRepository) DeletePendingRequest(ctx context.Context, userID string) error {
	query := `DELETE FROM accounts WHERE user_id = $1 AND status = $2`
	result, err := r.DB.ExecContext(ctx, query, userID, domain.AccountPendingRequest)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
