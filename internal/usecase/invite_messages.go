package usecase

import (
	"fmt"
	"slices"
)

// NotificationKind tells positive and negative notifications apart.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationFailure NotificationKind = "failure"
)

// NotificationEvent names the operation a notification reports on.
type NotificationEvent string

const (
	EventCreate  NotificationEvent = "create"
	EventDelete  NotificationEvent = "delete"
	EventLoad    NotificationEvent = "load"
	EventRefresh NotificationEvent = "refresh"
)

// Notification is one dismissible entry of a NotificationQueue.
type Notification struct {
	Token        int
	Kind         NotificationKind
	Event        NotificationEvent
	EmailAddress string
	Detail       string
}

// Message renders the text shown to the administrator.
func (n Notification) Message() string {
	var msg string
	switch {
	case n.Event == EventCreate && n.Kind == NotificationSuccess:
		return fmt.Sprintf("Sent account invite to %s.", n.EmailAddress)
	case n.Event == EventCreate:
		msg = fmt.Sprintf("Failed to send account invite to %s.", n.EmailAddress)
	case n.Event == EventDelete && n.Kind == NotificationSuccess:
		return fmt.Sprintf("Deleted account invite for %s.", n.EmailAddress)
	case n.Event == EventDelete:
		msg = fmt.Sprintf("Failed to delete account invite for %s.", n.EmailAddress)
	case n.Event == EventLoad:
		msg = "Failed to load pending invites."
	default:
		msg = "Failed to refresh pending invites."
	}
	if n.Detail != "" {
		msg += " Error message: " + n.Detail
	}
	return msg
}

// NotificationQueue is an ordered list of notifications. Methods never modify the
// receiver's backing array, so queues held by earlier states stay intact.
type NotificationQueue []Notification

// Push returns q with n appended.
func (q NotificationQueue) Push(n Notification) NotificationQueue {
	out := make(NotificationQueue, 0, len(q)+1)
	out = append(out, q...)
	return append(out, n)
}

// Dismiss returns q without the entry carrying token. ok is false when no entry has it.
func (q NotificationQueue) Dismiss(token int) (out NotificationQueue, ok bool) {
	i := slices.IndexFunc(q, func(n Notification) bool { return n.Token == token })
	if i < 0 {
		return q, false
	}
	out = make(NotificationQueue, 0, len(q)-1)
	out = append(out, q[:i]...)
	return append(out, q[i+1:]...), true
}

// Clear returns an empty queue.
func (q NotificationQueue) Clear() NotificationQueue { return nil }
