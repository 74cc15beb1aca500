// Package notify carries fire-and-forget user feedback signals out of the
// ledger. The ledger never blocks on or inspects the outcome of a
// notification.
package notify

import "go.uber.org/zap"

// Kind classifies a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// Notifier receives success/failure signals from ledger operations.
type Notifier interface {
	Notify(kind Kind, message string)
}

// logNotifier writes notifications to the structured log. The HTTP client
// gets its feedback from response codes; this keeps an operator-visible
// trail of every trade outcome.
type logNotifier struct {
	log *zap.SugaredLogger
}

// NewLogNotifier creates a Notifier backed by the given logger.
func NewLogNotifier(log *zap.SugaredLogger) Notifier {
	return &logNotifier{log: log}
}

func (n *logNotifier) Notify(kind Kind, message string) {
	switch kind {
	case KindError:
		n.log.Errorw("notification", "kind", kind, "message", message)
	case KindWarning:
		n.log.Warnw("notification", "kind", kind, "message", message)
	default:
		n.log.Infow("notification", "kind", kind, "message", message)
	}
}
