package relay

import (
	"context"
	"log/slog"
	"time"

	"bakery-preorder/internal/notify"
)

// DemoNotifier simulates delivery without network I/O. The would-be
// message is logged for the operator to inspect and Delivered is returned
// after a fixed delay, mirroring a real relay round trip.
type DemoNotifier struct {
	delay  time.Duration
	logger *slog.Logger
}

func NewDemoNotifier(delay time.Duration, logger *slog.Logger) *DemoNotifier {
	return &DemoNotifier{delay: delay, logger: logger}
}

func (d *DemoNotifier) Deliver(ctx context.Context, message string) notify.Outcome {
	d.logger.Info("=== デモモード ===", "message", message)

	timer := time.NewTimer(d.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		return notify.FailedOutcome("送信がキャンセルされました: " + ctx.Err().Error())
	}

	return notify.DeliveredOutcome()
}
