package domain

type CheckoutStatus string

const (
	CheckoutStatusValidating CheckoutStatus = "VALIDATING"
	CheckoutStatusRejected   CheckoutStatus = "REJECTED"
	CheckoutStatusConfirmed  CheckoutStatus = "CONFIRMED"
)

func (s CheckoutStatus) IsTerminal() bool {
	return s == CheckoutStatusRejected || s == CheckoutStatusConfirmed
}

// String representation (for logging)
func (s CheckoutStatus) String() string {
	return string(s)
}
