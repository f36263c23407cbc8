package notify

// Outcome is the classified result of one delivery attempt. It is consumed
// immediately by the submit pipeline and never stored.
type Outcome struct {
	delivered bool
	reason    string
}

func DeliveredOutcome() Outcome {
	return Outcome{delivered: true}
}

func FailedOutcome(reason string) Outcome {
	return Outcome{reason: reason}
}

func (o Outcome) IsDelivered() bool {
	return o.delivered
}

// Reason is the human-readable failure reason; empty when delivered.
func (o Outcome) Reason() string {
	return o.reason
}
