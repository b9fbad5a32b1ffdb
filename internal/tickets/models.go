package tickets

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the tier a ticket type sells
type Category string

const (
	CategoryStandard Category = "standard"
	CategoryVIP      Category = "vip"
)

// Categories lists every category in the order a booking processes them
var Categories = []Category{CategoryStandard, CategoryVIP}

func (c Category) IsValid() bool {
	switch c {
	case CategoryStandard, CategoryVIP:
		return true
	default:
		return false
	}
}

func (c Category) String() string {
	return string(c)
}

// DefaultCapacity returns the capacity assigned when the ticket type for this
// category is created on first booking
func (c Category) DefaultCapacity(standard, vip int) int {
	if c == CategoryVIP {
		return vip
	}
	return standard
}

// TicketType tracks capacity and sales of one category of one event
type TicketType struct {
	ID                int64           `json:"id" gorm:"primaryKey"`
	EventID           int64           `json:"event_id" gorm:"not null;uniqueIndex:idx_ticket_types_event_type"`
	TypeName          Category        `json:"type_name" gorm:"type:varchar(20);not null;uniqueIndex:idx_ticket_types_event_type"`
	Price             decimal.Decimal `json:"price" gorm:"type:numeric(12,2);not null"`
	AvailableQuantity int             `json:"available_quantity" gorm:"not null;check:chk_ticket_types_available,available_quantity >= 0"`
	SoldQuantity      int             `json:"sold_quantity" gorm:"not null;default:0;check:chk_ticket_types_sold,sold_quantity >= 0 AND sold_quantity <= available_quantity"`
	CreatedAt         time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// Remaining is the number of tickets still for sale
func (t *TicketType) Remaining() int {
	if t.SoldQuantity >= t.AvailableQuantity {
		return 0
	}
	return t.AvailableQuantity - t.SoldQuantity
}
