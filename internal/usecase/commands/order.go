package commands

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"bakery-preorder/internal/domain/order"
	reqdto "bakery-preorder/internal/handler/dto/request"
	"bakery-preorder/internal/notify"
	"bakery-preorder/internal/pkg/clock"
	"bakery-preorder/internal/pkg/errs"
)

var (
	ErrValidationFailed   = errs.New("order validation failed")
	ErrSubmissionInFlight = errs.New("another submission is in flight")
	ErrDeliveryFailed     = errs.New("order notification delivery failed")
)

type SubmitOrderResult struct {
	Order *order.OrderRequest
}

type OrderCommands interface {
	SubmitOrder(ctx context.Context, req reqdto.SubmitOrderRequest) (*SubmitOrderResult, error)
}

type orderUseCaseImpl struct {
	catalog  *order.Catalog
	notifier Notifier
	clock    clock.Clock
	location *time.Location
	inFlight atomic.Bool
}

func NewOrderUseCase(
	catalog *order.Catalog,
	notifier Notifier,
	clk clock.Clock,
	location *time.Location,
) OrderCommands {
	return &orderUseCaseImpl{
		catalog:  catalog,
		notifier: notifier,
		clock:    clk,
		location: location,
	}
}

// SubmitOrder runs one submit attempt: aggregate, validate, format,
// deliver. Validation failures never reach the notifier. The in-flight
// gate is acquired before the delivery suspension point and released in a
// deferred step regardless of outcome, so at most one order is in flight
// and a failed attempt leaves the pipeline resubmittable.
func (u *orderUseCaseImpl) SubmitOrder(ctx context.Context, req reqdto.SubmitOrderRequest) (*SubmitOrderResult, error) {
	agg := u.catalog.Aggregate(req.ToSelections())

	orderReq, err := order.NewOrderRequest(u.clock.Now(), u.location, agg, req.ToParams())
	if err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	if !u.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInFlight
	}
	defer u.inFlight.Store(false)

	message := notify.FormatOrder(orderReq)

	outcome := u.notifier.Deliver(ctx, message)
	if !outcome.IsDelivered() {
		slog.Warn("予約通知の送信に失敗しました", "order_id", orderReq.ID(), "reason", outcome.Reason())
		return nil, errs.Mark(errs.New(outcome.Reason()), ErrDeliveryFailed)
	}

	slog.Info("予約通知を送信しました", "order_id", orderReq.ID(), "total", orderReq.Total().Yen())
	return &SubmitOrderResult{Order: orderReq}, nil
}
