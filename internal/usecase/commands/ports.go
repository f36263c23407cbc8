package commands

import (
	"context"

	"bakery-preorder/internal/notify"
)

// Notifier delivers a formatted order notification to the chat relay and
// classifies the outcome. Implementations do not retry; a failed outcome
// is surfaced so the user can resubmit.
type Notifier interface {
	Deliver(ctx context.Context, message string) notify.Outcome
}
