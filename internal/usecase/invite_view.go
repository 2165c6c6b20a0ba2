package usecase

import (
	"context"
	"log/slog"
	"sync"

	"devportal/internal/domain"
)

// InviteView drives the pending-invite workflow against an AccountServiceClient.
// State changes go through ReduceInvites; the view only performs the calls.
type InviteView struct {
	client domain.AccountServiceClient
	logger *slog.Logger

	mu       sync.Mutex
	state    InviteState
	settled  chan struct{}
	onChange func(InviteState)
}

// NewInviteView creates a view with an empty account list.
func NewInviteView(client domain.AccountServiceClient, logger *slog.Logger) *InviteView {
	if logger == nil {
		logger = slog.Default()
	}
	settled := make(chan struct{})
	close(settled)
	return &InviteView{
		client:  client,
		logger:  logger,
		state:   InviteState{Accounts: []domain.Account{}},
		settled: settled,
	}
}

// OnChange registers fn to receive a copy of the state after every accepted action.
// fn runs without the view's lock held.
func (v *InviteView) OnChange(fn func(InviteState)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.onChange = fn
}

// State returns a copy of the current state.
func (v *InviteView) State() InviteState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state.Clone()
}

// Settled returns a channel closed once the background refresh started by the most
// recent successful create has been applied.
func (v *InviteView) Settled() <-chan struct{} {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.settled
}

func (v *InviteView) dispatch(a Action) (InviteState, error) {
	v.mu.Lock()
	next, err := ReduceInvites(v.state, a)
	if err != nil {
		v.mu.Unlock()
		return next, err
	}
	v.state = next
	fn := v.onChange
	snapshot := next.Clone()
	v.mu.Unlock()

	if fn != nil {
		fn(snapshot)
	}
	return snapshot, nil
}

// Load performs the initial fetch of pending invites.
func (v *InviteView) Load(ctx context.Context) error {
	return v.Refresh(ctx)
}

// Refresh re-fetches the account list and replaces it wholesale. A failure is
// posted to the page queue as well as returned.
func (v *InviteView) Refresh(ctx context.Context) error {
	if _, err := v.dispatch(LoadStarted{}); err != nil {
		return err
	}
	accounts, err := v.client.FetchPendingInviteAccounts(ctx)
	if err != nil {
		v.logger.WarnContext(ctx, "fetch pending invites failed", "err", err)
	}
	_, _ = v.dispatch(LoadSettled{Accounts: accounts, Err: err})
	return err
}

// Select makes account the current selection. nil clears it.
func (v *InviteView) Select(account *domain.Account) {
	_, _ = v.dispatch(SelectAccount{Account: account})
}

func (v *InviteView) OpenCreateModal() error {
	_, err := v.dispatch(OpenCreateModal{})
	return err
}

func (v *InviteView) CloseCreateModal() error {
	_, err := v.dispatch(CloseCreateModal{})
	return err
}

func (v *InviteView) OpenDeleteModal() error {
	_, err := v.dispatch(OpenDeleteModal{})
	return err
}

func (v *InviteView) CloseDeleteModal() {
	_, _ = v.dispatch(CloseDeleteModal{})
}

// Dismiss removes one notification from the page or create-modal queue.
func (v *InviteView) Dismiss(token int) error {
	_, err := v.dispatch(Dismiss{Token: token})
	return err
}

// ConfirmCreate invites email. On success the create modal closes and a refresh
// runs in the background; Loading stays set until it settles (see Settled). On
// failure the modal stays open with the error in its own queue.
func (v *InviteView) ConfirmCreate(ctx context.Context, email string) error {
	if _, err := v.dispatch(CreateStarted{EmailAddress: email}); err != nil {
		return err
	}
	if err := v.client.CreateInviteByEmail(ctx, email); err != nil {
		v.logger.WarnContext(ctx, "create invite failed", "email", email, "err", err)
		_, _ = v.dispatch(CreateFailed{EmailAddress: email, Err: err})
		return err
	}

	done := make(chan struct{})
	v.mu.Lock()
	v.settled = done
	v.mu.Unlock()

	_, _ = v.dispatch(CreateSucceeded{EmailAddress: email})

	refreshCtx := context.WithoutCancel(ctx)
	go func() {
		defer close(done)
		accounts, err := v.client.FetchPendingInviteAccounts(refreshCtx)
		if err != nil {
			v.logger.WarnContext(refreshCtx, "refresh after create failed", "err", err)
		}
		_, _ = v.dispatch(RefreshSettled{Accounts: accounts, Err: err})
	}()
	return nil
}

// ConfirmDelete deletes the selected invite. The delete modal closes before the
// request is sent. On success the list is refreshed before returning; on failure
// no refresh is made.
func (v *InviteView) ConfirmDelete(ctx context.Context) error {
	st, err := v.dispatch(DeleteStarted{})
	if err != nil {
		return err
	}
	account := *st.Selected

	if err := v.client.DeleteInviteByIdentityPoolID(ctx, account.IdentityPoolID); err != nil {
		v.logger.WarnContext(ctx, "delete invite failed", "identity_pool_id", account.IdentityPoolID, "err", err)
		_, _ = v.dispatch(DeleteFailed{Account: account, Err: err})
		return err
	}
	_, _ = v.dispatch(DeleteSucceeded{Account: account})

	accounts, err := v.client.FetchPendingInviteAccounts(ctx)
	if err != nil {
		v.logger.WarnContext(ctx, "refresh after delete failed", "err", err)
	}
	_, _ = v.dispatch(RefreshSettled{Accounts: accounts, Err: err})
	return nil
}
