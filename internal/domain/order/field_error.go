package order

import "fmt"

// Form field labels, matching the labels the reservation form shows.
const (
	LabelProduct    = "商品"
	LabelQuantity   = "数量"
	LabelName       = "お名前"
	LabelPhone      = "電話番号"
	LabelEmail      = "メールアドレス"
	LabelPickupDate = "受取希望日"
	LabelPickupTime = "受取時間"
	LabelTotal      = "合計金額"
)

// FieldError ties a validation failure to the label of the offending form
// field so the first invalid field can be named to the user.
type FieldError struct {
	Label string
	Err   error
}

func newFieldError(label string, err error) *FieldError {
	return &FieldError{Label: label, Err: err}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Label, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
