package testutil

import (
	"sync"

	"kabusim/internal/notify"
)

// Notification is one recorded notifier signal.
type Notification struct {
	Kind    notify.Kind
	Message string
}

// RecordingNotifier captures notifications for assertions.
type RecordingNotifier struct {
	mu            sync.Mutex
	notifications []Notification
}

// NewRecordingNotifier creates an empty recording notifier.
func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{}
}

// Notify records the signal.
func (n *RecordingNotifier) Notify(kind notify.Kind, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications = append(n.notifications, Notification{Kind: kind, Message: message})
}

// All returns a copy of every recorded notification.
func (n *RecordingNotifier) All() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Notification, len(n.notifications))
	copy(out, n.notifications)
	return out
}

// Last returns the most recent notification, or a zero value if none.
func (n *RecordingNotifier) Last() Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.notifications) == 0 {
		return Notification{}
	}
	return n.notifications[len(n.notifications)-1]
}

// CountKind returns how many notifications of the given kind were recorded.
func (n *RecordingNotifier) CountKind(kind notify.Kind) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	count := 0
	for _, rec := range n.notifications {
		if rec.Kind == kind {
			count++
		}
	}
	return count
}

var _ notify.Notifier = (*RecordingNotifier)(nil)
