package notifications

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const EventTypeBookingConfirmed = "booking.confirmed"

// BookingConfirmed is published once a booking transaction has committed.
// Downstream consumers (receipts, payment collection) key off the reference.
type BookingConfirmed struct {
	MessageID string `json:"message_id"`
	EventType string `json:"event_type"`

	BookingID        int64           `json:"booking_id"`
	BookingReference string          `json:"booking_reference"`
	PaymentStatus    string          `json:"payment_status"`
	TotalAmount      decimal.Decimal `json:"total_amount"`

	EventID    int64     `json:"event_id"`
	EventTitle string    `json:"event_title"`
	EventDate  time.Time `json:"event_date"`

	CustomerID    int64  `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`

	StandardQty int `json:"standard_qty"`
	VIPQty      int `json:"vip_qty"`

	OccurredAt time.Time `json:"occurred_at"`
}

// stamp fills the envelope fields a caller left empty
func (m *BookingConfirmed) stamp(now time.Time) {
	if m.MessageID == "" {
		m.MessageID = uuid.NewString()
	}
	if m.EventType == "" {
		m.EventType = EventTypeBookingConfirmed
	}
	if m.OccurredAt.IsZero() {
		m.OccurredAt = now
	}
}

func (m *BookingConfirmed) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// PartitionKey keeps every message about one booking on one partition
func (m *BookingConfirmed) PartitionKey() string {
	if m.BookingReference != "" {
		return m.BookingReference
	}
	return strconv.FormatInt(m.BookingID, 10)
}
