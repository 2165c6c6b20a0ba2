package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"devportal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient is an in-memory AccountServiceClient. When fetchGate is set, fetches
// block until it is closed.
type fakeClient struct {
	mu        sync.Mutex
	accounts  []domain.Account
	fetchErr  error
	createErr error
	deleteErr error
	fetchGate chan struct{}

	fetches int
	created []string
	deleted []string
}

func (f *fakeClient) FetchPendingInviteAccounts(ctx context.Context) ([]domain.Account, error) {
	f.mu.Lock()
	gate := f.fetchGate
	f.fetches++
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return append([]domain.Account(nil), f.accounts...), nil
}

func (f *fakeClient) CreateInviteByEmail(ctx context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, email)
	if f.createErr != nil {
		return f.createErr
	}
	f.accounts = append([]domain.Account{acct("new-"+email, email)}, f.accounts...)
	return nil
}

func (f *fakeClient) DeleteInviteByIdentityPoolID(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, a := range f.accounts {
		if a.IdentityPoolID == id {
			f.accounts = append(f.accounts[:i], f.accounts[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeClient) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

func newTestView(client *fakeClient) *InviteView {
	return NewInviteView(client, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func waitSettled(t *testing.T, v *InviteView) {
	t.Helper()
	select {
	case <-v.Settled():
	case <-time.After(2 * time.Second):
		t.Fatal("background refresh did not settle")
	}
}

func TestInviteView_Load(t *testing.T) {
	t.Run("renders the fetched list in order", func(t *testing.T) {
		client := &fakeClient{accounts: []domain.Account{acct("1", "a@x"), acct("2", "b@x"), acct("3", "c@x")}}
		v := newTestView(client)

		require.NoError(t, v.Load(context.Background()))
		st := v.State()
		assert.False(t, st.Loading)
		require.Len(t, st.Accounts, 3)
		assert.Equal(t, "a@x", st.Accounts[0].EmailAddress)
		assert.Equal(t, "c@x", st.Accounts[2].EmailAddress)
	})

	t.Run("failure clears loading and posts a notification", func(t *testing.T) {
		client := &fakeClient{fetchErr: domain.E(domain.KindUnavailable, "down")}
		v := newTestView(client)

		err := v.Load(context.Background())
		require.Error(t, err)
		st := v.State()
		assert.False(t, st.Loading)
		assert.Empty(t, st.Accounts)
		require.Len(t, st.Messages, 1)
		assert.Equal(t, "Failed to load pending invites. Error message: down", st.Messages[0].Message())
	})
}

func TestInviteView_ConfirmCreate_Success(t *testing.T) {
	gate := make(chan struct{})
	client := &fakeClient{}
	v := newTestView(client)
	require.NoError(t, v.Load(context.Background()))
	client.fetchGate = gate

	var changes int
	var mu sync.Mutex
	v.OnChange(func(InviteState) {
		mu.Lock()
		changes++
		mu.Unlock()
	})

	require.NoError(t, v.OpenCreateModal())
	require.NoError(t, v.ConfirmCreate(context.Background(), "a@b"))
	assert.Equal(t, []string{"a@b"}, client.created)

	// The modal has closed and the success notice is visible while the refresh is still running.
	st := v.State()
	assert.False(t, st.CreateModalOpen)
	assert.True(t, st.Loading)
	require.Len(t, st.Messages, 1)
	assert.Equal(t, "Sent account invite to a@b.", st.Messages[0].Message())
	assert.ErrorIs(t, v.OpenCreateModal(), ErrBusy)

	close(gate)
	waitSettled(t, v)

	st = v.State()
	assert.False(t, st.Loading)
	require.Len(t, st.Accounts, 1)
	assert.Equal(t, "a@b", st.Accounts[0].EmailAddress)
	assert.Equal(t, 2, client.fetchCount())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 4, changes, "open, started, succeeded, refresh settled")
}

func TestInviteView_ConfirmCreate_Failure(t *testing.T) {
	client := &fakeClient{createErr: domain.E(domain.KindConflict, "email already in use")}
	v := newTestView(client)
	require.NoError(t, v.Load(context.Background()))
	require.NoError(t, v.OpenCreateModal())

	err := v.ConfirmCreate(context.Background(), "a@b")
	require.Error(t, err)

	st := v.State()
	assert.True(t, st.CreateModalOpen)
	assert.False(t, st.Loading)
	assert.Empty(t, st.Messages, "failure goes to the modal queue, not the page")
	require.Len(t, st.CreateModalMessages, 1)
	assert.Contains(t, st.CreateModalMessages[0].Message(), "email already in use")
	assert.Equal(t, 1, client.fetchCount(), "no refresh after a failed create")
}

func TestInviteView_ConfirmCreate_Busy(t *testing.T) {
	gate := make(chan struct{})
	client := &fakeClient{fetchGate: gate}
	v := newTestView(client)

	done := make(chan error, 1)
	go func() { done <- v.Load(context.Background()) }()
	require.Eventually(t, func() bool { return client.fetchCount() == 1 }, time.Second, 5*time.Millisecond)

	assert.ErrorIs(t, v.OpenCreateModal(), ErrBusy)
	assert.ErrorIs(t, v.ConfirmCreate(context.Background(), "a@b"), ErrBusy)
	assert.Empty(t, client.created)

	close(gate)
	require.NoError(t, <-done)
}

func TestInviteView_ConfirmDelete(t *testing.T) {
	x := acct("X", "u@d")

	t.Run("success refreshes before returning", func(t *testing.T) {
		client := &fakeClient{accounts: []domain.Account{x, acct("Y", "v@d")}}
		v := newTestView(client)
		require.NoError(t, v.Load(context.Background()))
		v.Select(&x)
		require.NoError(t, v.OpenDeleteModal())

		require.NoError(t, v.ConfirmDelete(context.Background()))
		assert.Equal(t, []string{"X"}, client.deleted)
		assert.Equal(t, 2, client.fetchCount())

		st := v.State()
		assert.False(t, st.Loading)
		assert.False(t, st.DeleteModalOpen)
		assert.Nil(t, st.Selected)
		require.Len(t, st.Accounts, 1)
		require.Len(t, st.Messages, 1)
		assert.Equal(t, "Deleted account invite for u@d.", st.Messages[0].Message())
	})

	t.Run("failure posts a notice and skips the refresh", func(t *testing.T) {
		client := &fakeClient{accounts: []domain.Account{x}, deleteErr: errors.New("boom")}
		v := newTestView(client)
		require.NoError(t, v.Load(context.Background()))
		v.Select(&x)
		require.NoError(t, v.OpenDeleteModal())

		require.Error(t, v.ConfirmDelete(context.Background()))
		assert.Equal(t, []string{"X"}, client.deleted)
		assert.Equal(t, 1, client.fetchCount())

		st := v.State()
		assert.False(t, st.Loading)
		require.Len(t, st.Messages, 1)
		assert.Equal(t, NotificationFailure, st.Messages[0].Kind)
		assert.Equal(t, "Failed to delete account invite for u@d. Error message: internal error", st.Messages[0].Message())
		require.NotNil(t, st.Selected, "selection survives a failed delete")
	})

	t.Run("refresh failure after delete is reported separately", func(t *testing.T) {
		client := &fakeClient{accounts: []domain.Account{x}}
		v := newTestView(client)
		require.NoError(t, v.Load(context.Background()))
		v.Select(&x)
		require.NoError(t, v.OpenDeleteModal())
		client.fetchErr = domain.E(domain.KindUnavailable, "down")

		require.NoError(t, v.ConfirmDelete(context.Background()))
		st := v.State()
		assert.False(t, st.Loading)
		require.Len(t, st.Messages, 2)
		assert.Equal(t, EventDelete, st.Messages[0].Event)
		assert.Equal(t, NotificationSuccess, st.Messages[0].Kind)
		assert.Equal(t, EventRefresh, st.Messages[1].Event)
	})

	t.Run("no selection", func(t *testing.T) {
		client := &fakeClient{}
		v := newTestView(client)
		assert.ErrorIs(t, v.OpenDeleteModal(), ErrNoSelection)
		assert.ErrorIs(t, v.ConfirmDelete(context.Background()), ErrNoSelection)
		assert.Empty(t, client.deleted)
	})
}

func TestInviteView_Dismiss(t *testing.T) {
	client := &fakeClient{fetchErr: errors.New("x")}
	v := newTestView(client)
	_ = v.Load(context.Background())
	client.fetchErr = nil
	_ = v.Refresh(context.Background())
	client.fetchErr = errors.New("y")
	_ = v.Refresh(context.Background())

	st := v.State()
	require.Len(t, st.Messages, 2)
	require.NoError(t, v.Dismiss(st.Messages[0].Token))
	assert.Len(t, v.State().Messages, 1)
	assert.ErrorIs(t, v.Dismiss(st.Messages[0].Token), ErrUnknownNotification)
}
