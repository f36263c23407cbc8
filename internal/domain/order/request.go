package order

import (
	"errors"
	"time"

	"bakery-preorder/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrNoProductSelected = errors.New("at least one product must be selected")
	ErrInvalidQuantity   = errors.New("quantity is missing or not a number")
	ErrUnknownProduct    = errors.New("unknown product")
	ErrTotalMismatch     = errors.New("displayed total does not match the computed total")
)

// NewOrderRequestParams carries the raw form values of one submit attempt.
type NewOrderRequestParams struct {
	Name       string
	Phone      string
	Email      string
	PickupDate string
	PickupTime string
	Notes      string
	// ShownTotal is the total the form last displayed, when the client
	// reports it. It must equal the recomputed total.
	ShownTotal *int64
}

// OrderRequest is the validated aggregate handed to the notification
// transport. Constructed once per submit attempt, immutable thereafter,
// and discarded when the attempt completes.
type OrderRequest struct {
	id         uuid.UUID
	customer   CustomerName
	phone      PhoneNumber
	email      Email
	lines      []OrderLine
	total      Money
	pickupDate PickupDate
	pickupTime PickupTime
	note       Note
	createdAt  time.Time
}

// NewOrderRequest validates the aggregate and form values in form order,
// stopping at the first failure. Field failures are reported as FieldError
// so the offending field can be named.
func NewOrderRequest(now time.Time, loc *time.Location, agg Aggregate, params NewOrderRequestParams) (*OrderRequest, error) {
	if len(agg.lines) == 0 && len(agg.defects) == 0 {
		return nil, ErrNoProductSelected
	}
	for _, d := range agg.defects {
		switch d.Kind {
		case DefectUnknownProduct:
			return nil, newFieldError(LabelProduct, ErrUnknownProduct)
		case DefectMissingQuantity:
			return nil, newFieldError(LabelQuantity, ErrInvalidQuantity)
		}
	}

	customer, err := NewCustomerName(params.Name)
	if err != nil {
		return nil, newFieldError(LabelName, err)
	}

	phone, err := NewPhoneNumber(params.Phone)
	if err != nil {
		return nil, newFieldError(LabelPhone, err)
	}

	email, err := NewEmail(params.Email)
	if err != nil {
		return nil, newFieldError(LabelEmail, err)
	}

	pickupDate, err := NewPickupDate(params.PickupDate, loc)
	if err != nil {
		return nil, newFieldError(LabelPickupDate, err)
	}
	if err := pickupDate.ValidateAfter(clock.Today(now, loc)); err != nil {
		return nil, newFieldError(LabelPickupDate, err)
	}

	pickupTime, err := NewPickupTime(params.PickupTime)
	if err != nil {
		return nil, newFieldError(LabelPickupTime, err)
	}

	if params.ShownTotal != nil && *params.ShownTotal != agg.total.Yen() {
		return nil, newFieldError(LabelTotal, ErrTotalMismatch)
	}

	return &OrderRequest{
		id:         uuid.New(),
		customer:   customer,
		phone:      phone,
		email:      email,
		lines:      agg.Lines(),
		total:      agg.total,
		pickupDate: pickupDate,
		pickupTime: pickupTime,
		note:       NewNote(params.Notes),
		createdAt:  now,
	}, nil
}

func (r *OrderRequest) ID() uuid.UUID {
	return r.id
}

func (r *OrderRequest) Customer() CustomerName {
	return r.customer
}

func (r *OrderRequest) Phone() PhoneNumber {
	return r.phone
}

func (r *OrderRequest) Email() Email {
	return r.email
}

func (r *OrderRequest) Lines() []OrderLine {
	out := make([]OrderLine, len(r.lines))
	copy(out, r.lines)
	return out
}

func (r *OrderRequest) Total() Money {
	return r.total
}

func (r *OrderRequest) PickupDate() PickupDate {
	return r.pickupDate
}

func (r *OrderRequest) PickupTime() PickupTime {
	return r.pickupTime
}

func (r *OrderRequest) Note() Note {
	return r.note
}

func (r *OrderRequest) CreatedAt() time.Time {
	return r.createdAt
}
