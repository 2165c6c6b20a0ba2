package usecase

import (
	"errors"
	"slices"

	"devportal/internal/domain"
)

var (
	// ErrBusy is returned when an action needs the view idle but a request is in flight.
	ErrBusy = errors.New("another request is in progress")
	// ErrNoSelection is returned by delete actions when no account is selected.
	ErrNoSelection = errors.New("no account selected")
	// ErrModalClosed is returned when a confirmation arrives for a modal that is not open.
	ErrModalClosed = errors.New("modal is not open")
	// ErrNotSubmitting is returned when a completion arrives for a request that was never started.
	ErrNotSubmitting = errors.New("no matching request in flight")
	// ErrUnknownNotification is returned when dismissing a token no queue holds.
	ErrUnknownNotification = errors.New("unknown notification")
)

// Phase is the named state of the invite view.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseModalOpen
	PhaseSubmitting
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseModalOpen:
		return "modal_open"
	case PhaseSubmitting:
		return "submitting"
	default:
		return "idle"
	}
}

// ModalKind identifies one of the two modals.
type ModalKind int

const (
	ModalNone ModalKind = iota
	ModalCreate
	ModalDelete
)

func (k ModalKind) String() string {
	switch k {
	case ModalCreate:
		return "create"
	case ModalDelete:
		return "delete"
	default:
		return "none"
	}
}

// InviteState is the complete state of the pending-invite view. It is a value:
// ReduceInvites returns a new state and never mutates the one passed in.
type InviteState struct {
	Accounts            []domain.Account
	Loading             bool
	Selected            *domain.Account
	CreateModalOpen     bool
	DeleteModalOpen     bool
	Messages            NotificationQueue
	CreateModalMessages NotificationQueue

	submitting ModalKind
	nextToken  int
}

// Phase derives the named state.
func (s InviteState) Phase() Phase {
	switch {
	case s.submitting != ModalNone:
		return PhaseSubmitting
	case s.Loading:
		return PhaseLoading
	case s.CreateModalOpen || s.DeleteModalOpen:
		return PhaseModalOpen
	default:
		return PhaseIdle
	}
}

// Submitting reports which modal's request is in flight.
func (s InviteState) Submitting() ModalKind { return s.submitting }

// CanCreate reports whether the create control is enabled.
func (s InviteState) CanCreate() bool { return !s.Loading }

// CanDelete reports whether the delete control is enabled.
func (s InviteState) CanDelete() bool { return !s.Loading && s.Selected != nil }

// Clone returns a deep copy that shares no slices or pointers with s.
func (s InviteState) Clone() InviteState {
	out := s
	out.Accounts = slices.Clone(s.Accounts)
	out.Messages = slices.Clone(s.Messages)
	out.CreateModalMessages = slices.Clone(s.CreateModalMessages)
	if s.Selected != nil {
		sel := *s.Selected
		out.Selected = &sel
	}
	return out
}

// Action is an input to ReduceInvites.
type Action interface{ inviteAction() }

type (
	// LoadStarted begins a fetch of the account list outside a mutation.
	LoadStarted struct{}
	// LoadSettled completes a LoadStarted fetch.
	LoadSettled struct {
		Accounts []domain.Account
		Err      error
	}
	// RefreshSettled completes the fetch that follows a successful create or delete.
	RefreshSettled struct {
		Accounts []domain.Account
		Err      error
	}
	SelectAccount    struct{ Account *domain.Account }
	OpenCreateModal  struct{}
	CloseCreateModal struct{}
	OpenDeleteModal  struct{}
	CloseDeleteModal struct{}
	CreateStarted    struct{ EmailAddress string }
	CreateSucceeded  struct{ EmailAddress string }
	CreateFailed     struct {
		EmailAddress string
		Err          error
	}
	DeleteStarted   struct{}
	DeleteSucceeded struct{ Account domain.Account }
	DeleteFailed    struct {
		Account domain.Account
		Err     error
	}
	// Dismiss removes the notification with Token from whichever queue holds it.
	Dismiss struct{ Token int }
)

func (LoadStarted) inviteAction()      {}
func (LoadSettled) inviteAction()      {}
func (RefreshSettled) inviteAction()   {}
func (SelectAccount) inviteAction()    {}
func (OpenCreateModal) inviteAction()  {}
func (CloseCreateModal) inviteAction() {}
func (OpenDeleteModal) inviteAction()  {}
func (CloseDeleteModal) inviteAction() {}
func (CreateStarted) inviteAction()    {}
func (CreateSucceeded) inviteAction()  {}
func (CreateFailed) inviteAction()     {}
func (DeleteStarted) inviteAction()    {}
func (DeleteSucceeded) inviteAction()  {}
func (DeleteFailed) inviteAction()     {}
func (Dismiss) inviteAction()          {}

// ReduceInvites applies action to state. All soft-lock guards live here: when an
// action is not allowed the unchanged state is returned with the reason.
func ReduceInvites(state InviteState, action Action) (InviteState, error) {
	s := state.Clone()

	switch a := action.(type) {
	case LoadStarted:
		if s.Loading {
			return state, ErrBusy
		}
		s.Loading = true

	case LoadSettled:
		s.settleList(a.Accounts, a.Err, EventLoad)

	case RefreshSettled:
		s.settleList(a.Accounts, a.Err, EventRefresh)

	case SelectAccount:
		if a.Account == nil {
			s.Selected = nil
			break
		}
		sel := *a.Account
		s.Selected = &sel

	case OpenCreateModal:
		if !s.CanCreate() {
			return state, ErrBusy
		}
		s.CreateModalOpen = true

	case CloseCreateModal:
		if s.submitting == ModalCreate {
			return state, ErrBusy
		}
		s.CreateModalOpen = false

	case OpenDeleteModal:
		if s.Selected == nil {
			return state, ErrNoSelection
		}
		if s.Loading {
			return state, ErrBusy
		}
		s.DeleteModalOpen = true

	case CloseDeleteModal:
		s.DeleteModalOpen = false

	case CreateStarted:
		if s.Loading {
			return state, ErrBusy
		}
		if !s.CreateModalOpen {
			return state, ErrModalClosed
		}
		s.Loading = true
		s.submitting = ModalCreate
		s.CreateModalMessages = s.CreateModalMessages.Clear()

	case CreateSucceeded:
		if s.submitting != ModalCreate {
			return state, ErrNotSubmitting
		}
		// Loading stays set until the follow-up RefreshSettled.
		s.submitting = ModalNone
		s.CreateModalOpen = false
		s.CreateModalMessages = s.CreateModalMessages.Clear()
		s.Messages = s.Messages.Push(s.notify(NotificationSuccess, EventCreate, a.EmailAddress, nil))

	case CreateFailed:
		if s.submitting != ModalCreate {
			return state, ErrNotSubmitting
		}
		s.submitting = ModalNone
		s.Loading = false
		s.CreateModalMessages = s.CreateModalMessages.Push(s.notify(NotificationFailure, EventCreate, a.EmailAddress, a.Err))

	case DeleteStarted:
		if s.Selected == nil {
			return state, ErrNoSelection
		}
		if s.Loading {
			return state, ErrBusy
		}
		if !s.DeleteModalOpen {
			return state, ErrModalClosed
		}
		s.Loading = true
		s.submitting = ModalDelete
		s.DeleteModalOpen = false

	case DeleteSucceeded:
		if s.submitting != ModalDelete {
			return state, ErrNotSubmitting
		}
		s.submitting = ModalNone
		s.Messages = s.Messages.Push(s.notify(NotificationSuccess, EventDelete, a.Account.EmailAddress, nil))

	case DeleteFailed:
		if s.submitting != ModalDelete {
			return state, ErrNotSubmitting
		}
		s.submitting = ModalNone
		s.Loading = false
		s.Messages = s.Messages.Push(s.notify(NotificationFailure, EventDelete, a.Account.EmailAddress, a.Err))

	case Dismiss:
		var ok bool
		if s.Messages, ok = s.Messages.Dismiss(a.Token); ok {
			break
		}
		if s.CreateModalMessages, ok = s.CreateModalMessages.Dismiss(a.Token); ok {
			break
		}
		return state, ErrUnknownNotification
	}

	return s, nil
}

// settleList finishes a list fetch. Loading clears whether or not the fetch worked.
func (s *InviteState) settleList(accounts []domain.Account, err error, event NotificationEvent) {
	s.Loading = false
	if err != nil {
		s.Messages = s.Messages.Push(s.notify(NotificationFailure, event, "", err))
		return
	}
	s.Accounts = slices.Clone(accounts)
	if s.Accounts == nil {
		s.Accounts = []domain.Account{}
	}
	s.resolveSelection()
}

// resolveSelection points Selected at the refreshed copy of the same identity-pool id,
// or clears it when the account is gone.
func (s *InviteState) resolveSelection() {
	if s.Selected == nil {
		return
	}
	i := slices.IndexFunc(s.Accounts, func(a domain.Account) bool {
		return a.IdentityPoolID == s.Selected.IdentityPoolID
	})
	if i < 0 {
		s.Selected = nil
		return
	}
	sel := s.Accounts[i]
	s.Selected = &sel
}

func (s *InviteState) notify(kind NotificationKind, event NotificationEvent, email string, err error) Notification {
	s.nextToken++
	n := Notification{Token: s.nextToken, Kind: kind, Event: event, EmailAddress: email}
	if err != nil {
		n.Detail = domain.MessageOf(err)
	}
	return n
}
