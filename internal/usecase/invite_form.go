package usecase

import (
	"context"
	"regexp"
	"sync"

	"devportal/internal/domain"
)

// emailShape is the advisory client-side check; the server validates for real.
var emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)

// ValidEmail reports whether s has the shape local@domain with no whitespace and a single @.
func ValidEmail(s string) bool {
	return emailShape.MatchString(s)
}

// InviteCreator is what the create form confirms against. *InviteView implements it.
type InviteCreator interface {
	ConfirmCreate(ctx context.Context, email string) error
}

// CreateInviteForm is the state of the create-invite modal's input.
type CreateInviteForm struct {
	creator InviteCreator

	mu         sync.Mutex
	email      string
	submitting bool
}

func NewCreateInviteForm(creator InviteCreator) *CreateInviteForm {
	return &CreateInviteForm{creator: creator}
}

// SetEmail replaces the input text. The input is disabled while submitting.
func (f *CreateInviteForm) SetEmail(s string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return ErrBusy
	}
	f.email = s
	return nil
}

func (f *CreateInviteForm) Email() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.email
}

func (f *CreateInviteForm) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// CanConfirm reports whether the create control is enabled.
func (f *CreateInviteForm) CanConfirm() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.submitting && ValidEmail(f.email)
}

// CanCancel reports whether the cancel control is enabled.
func (f *CreateInviteForm) CanCancel() bool {
	return !f.Submitting()
}

// ShowWarning reports whether the "enter a valid email address" hint is visible.
func (f *CreateInviteForm) ShowWarning() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.submitting && !ValidEmail(f.email)
}

// Confirm submits the current text. The text is cleared only when the creator
// succeeds, so a failed attempt can be retried as is.
func (f *CreateInviteForm) Confirm(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrBusy
	}
	if !ValidEmail(f.email) {
		f.mu.Unlock()
		return domain.ErrInvalidEmail
	}
	email := f.email
	f.submitting = true
	f.mu.Unlock()

	err := f.creator.ConfirmCreate(ctx, email)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err == nil {
		f.email = ""
	}
	return err
}

// DeleteConfirmation returns the warning shown before deleting account. ok is
// false when there is no account, in which case nothing is rendered.
func DeleteConfirmation(account *domain.Account) (text string, ok bool) {
	if account == nil {
		return "", false
	}
	return "Are you sure you want to delete this account invite for " + account.EmailAddress + "? This action is irreversible.", true
}
