package bookings

type PaymentStatus string

// Bookings are recorded unpaid; settlement happens outside this service.
const PaymentStatusPending PaymentStatus = "pending"

func (s PaymentStatus) String() string {
	return string(s)
}
