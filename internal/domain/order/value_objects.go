package order

import (
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrNegativePrice       = errors.New("price cannot be negative")
	ErrQuantityOutOfRange  = errors.New("quantity must be between 1 and 99")
	ErrNameRequired        = errors.New("customer name is required")
	ErrNameTooLong         = errors.New("customer name is too long")
	ErrInvalidPhone        = errors.New("invalid phone number")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrInvalidPickupDate   = errors.New("invalid pickup date")
	ErrPickupDateNotFuture = errors.New("pickup date must be later than today")
	ErrInvalidPickupTime   = errors.New("invalid pickup time slot")
)

// Money is an amount in yen, the smallest currency unit.
type Money struct {
	yen int64
}

func NewMoney(yen int64) (Money, error) {
	if yen < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{yen: yen}, nil
}

func (m Money) Yen() int64 {
	return m.yen
}

func (m Money) Add(other Money) Money {
	return Money{yen: m.yen + other.yen}
}

func (m Money) Mul(n int) Money {
	return Money{yen: m.yen * int64(n)}
}

const (
	MinQuantity = 1
	MaxQuantity = 99
)

type Quantity struct {
	value int
}

func NewQuantity(v int) (Quantity, error) {
	if v < MinQuantity || v > MaxQuantity {
		return Quantity{}, ErrQuantityOutOfRange
	}
	return Quantity{value: v}, nil
}

// ClampQuantity is the commit-time behavior of the quantity control:
// out-of-range values are pulled back to the nearest bound.
func ClampQuantity(v int) Quantity {
	if v < MinQuantity {
		v = MinQuantity
	}
	if v > MaxQuantity {
		v = MaxQuantity
	}
	return Quantity{value: v}
}

func (q Quantity) Value() int {
	return q.value
}

const maxPhoneDigits = 11

// NormalizePhone strips everything but digits, truncates to 11 digits and
// re-inserts separators in the 3-4-4 grouping. Idempotent:
// NormalizePhone(NormalizePhone(x)) == NormalizePhone(x).
func NormalizePhone(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	value := digits.String()
	if len(value) > maxPhoneDigits {
		value = value[:maxPhoneDigits]
	}

	switch {
	case len(value) > 7:
		return value[:3] + "-" + value[3:7] + "-" + value[7:]
	case len(value) > 3:
		return value[:3] + "-" + value[3:]
	default:
		return value
	}
}

type PhoneNumber struct {
	value string
}

// NewPhoneNumber normalizes raw input and accepts 10 or 11 digit numbers.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	normalized := NormalizePhone(raw)
	digits := strings.ReplaceAll(normalized, "-", "")
	if len(digits) < 10 {
		return PhoneNumber{}, ErrInvalidPhone
	}
	return PhoneNumber{value: normalized}, nil
}

func (p PhoneNumber) String() string {
	return p.value
}

const maxNameLength = 100

type CustomerName struct {
	value string
}

func NewCustomerName(raw string) (CustomerName, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return CustomerName{}, ErrNameRequired
	}
	if utf8.RuneCountInString(trimmed) > maxNameLength {
		return CustomerName{}, ErrNameTooLong
	}
	return CustomerName{value: trimmed}, nil
}

func (n CustomerName) String() string {
	return n.value
}

// Email is optional; the zero value means "not provided".
type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Email{}, nil
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: trimmed}, nil
}

func (e Email) String() string {
	return e.value
}

func (e Email) IsEmpty() bool {
	return e.value == ""
}

const pickupDateLayout = "2006-01-02"

type PickupDate struct {
	value time.Time
}

func NewPickupDate(raw string, loc *time.Location) (PickupDate, error) {
	t, err := time.ParseInLocation(pickupDateLayout, strings.TrimSpace(raw), loc)
	if err != nil {
		return PickupDate{}, ErrInvalidPickupDate
	}
	return PickupDate{value: t}, nil
}

// ValidateAfter rejects dates on or before today. The minimum selectable
// date advertised to the form is tomorrow; this re-check catches clients
// that bypass the input constraint.
func (d PickupDate) ValidateAfter(today time.Time) error {
	if !d.value.After(today) {
		return ErrPickupDateNotFuture
	}
	return nil
}

func (d PickupDate) String() string {
	return d.value.Format(pickupDateLayout)
}

// PickupSlots are the selectable pickup times, matching the form's choices.
var PickupSlots = []string{
	"10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00",
}

type PickupTime struct {
	value string
}

func NewPickupTime(raw string) (PickupTime, error) {
	trimmed := strings.TrimSpace(raw)
	for _, slot := range PickupSlots {
		if trimmed == slot {
			return PickupTime{value: trimmed}, nil
		}
	}
	return PickupTime{}, ErrInvalidPickupTime
}

func (t PickupTime) String() string {
	return t.value
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
