package bookings

import (
	"time"

	"itickets/internal/tickets"

	"github.com/shopspring/decimal"
)

// Booking is one customer's purchase for one event. The customer's details
// are recorded as submitted, independent of the stored customer profile.
type Booking struct {
	ID               int64           `gorm:"primaryKey" json:"id"`
	UserID           int64           `gorm:"index;not null" json:"user_id"`
	EventID          int64           `gorm:"index;not null" json:"event_id"`
	BookingReference string          `gorm:"size:32;uniqueIndex;not null" json:"booking_reference"`
	FullName         string          `gorm:"size:255;not null" json:"full_name"`
	Email            string          `gorm:"size:255;not null" json:"email"`
	Phone            string          `gorm:"size:50" json:"phone"`
	IDNumber         string          `gorm:"size:50" json:"id_number"`
	TotalAmount      decimal.Decimal `gorm:"type:numeric(12,2);not null;check:chk_bookings_total_amount,total_amount >= 0" json:"total_amount"`
	PaymentStatus    PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	LineItems []LineItem `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE;" json:"line_items,omitempty"`
}

// LineItem records the tickets of one category within a booking
type LineItem struct {
	ID           int64           `gorm:"primaryKey" json:"id"`
	BookingID    int64           `gorm:"index;not null" json:"booking_id"`
	TicketTypeID int64           `gorm:"index;not null" json:"ticket_type_id"`
	Quantity     int             `gorm:"not null;check:chk_booking_tickets_quantity,quantity > 0" json:"quantity"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	Subtotal     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"subtotal"`
	CreatedAt    time.Time       `json:"created_at"`
}

func (LineItem) TableName() string {
	return "booking_tickets"
}

// linePlan is a line item priced before the transaction opens
type linePlan struct {
	Category  tickets.Category
	Quantity  int
	UnitPrice decimal.Decimal
	Capacity  int
}

func (p linePlan) Subtotal() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
