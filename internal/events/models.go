package events

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const listingDateLayout = "Jan 02, 2006"

type Event struct {
	ID            int64           `json:"id" gorm:"primaryKey"`
	OrganizerID   int64           `json:"organizer_id" gorm:"not null;index"`
	VenueID       int64           `json:"venue_id" gorm:"not null;index"`
	Title         string          `json:"title" gorm:"not null;size:255"`
	Description   string          `json:"description" gorm:"type:text"`
	Category      string          `json:"category" gorm:"size:50"`
	EventDate     time.Time       `json:"event_date" gorm:"not null;index"`
	StandardPrice decimal.Decimal `json:"standard_price" gorm:"type:numeric(12,2);not null;default:0;check:chk_events_standard_price,standard_price >= 0"`
	VIPPrice      decimal.Decimal `json:"vip_price" gorm:"column:vip_price;type:numeric(12,2);not null;default:0;check:chk_events_vip_price,vip_price >= 0"`
	ImageURL      string          `json:"image_url" gorm:"size:500"`
	Status        EventStatus     `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	CreatedAt     time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Event) TableName() string {
	return "events"
}

// UpcomingEvent is one row of the catalog listing query
type UpcomingEvent struct {
	ID                int64
	Title             string
	Description       string
	Category          string
	EventDate         time.Time
	StandardPrice     decimal.Decimal
	VIPPrice          decimal.Decimal `gorm:"column:vip_price"`
	ImageURL          string
	VenueName         string
	VenueAddress      string
	VenueCity         string
	StandardAvailable int
	VIPAvailable      int `gorm:"column:vip_available"`
}

// EventResponse is the catalog listing item. Field names follow the
// storefront's existing contract.
type EventResponse struct {
	ID                     int64   `json:"id"`
	Title                  string  `json:"title"`
	Description            string  `json:"description"`
	Category               string  `json:"category"`
	ImageURL               string  `json:"image_url"`
	EventDate              string  `json:"event_date"`
	EventDateFormatted     string  `json:"event_date_formatted"`
	VenueName              string  `json:"venue_name"`
	Address                string  `json:"address"`
	City                   string  `json:"city"`
	StandardPrice          float64 `json:"standard_price"`
	VIPPrice               float64 `json:"vip_price"`
	StandardPriceFormatted string  `json:"standard_price_formatted"`
	VIPPriceFormatted      string  `json:"vip_price_formatted"`
	StandardAvailable      int     `json:"standard_available"`
	VIPAvailable           int     `json:"vip_available"`
	AvailableTickets       int     `json:"available_tickets"`
}

func (u *UpcomingEvent) ToResponse() EventResponse {
	return EventResponse{
		ID:                     u.ID,
		Title:                  u.Title,
		Description:            u.Description,
		Category:               u.Category,
		ImageURL:               u.ImageURL,
		EventDate:              u.EventDate.Format(time.RFC3339),
		EventDateFormatted:     u.EventDate.Format(listingDateLayout),
		VenueName:              u.VenueName,
		Address:                u.VenueAddress,
		City:                   u.VenueCity,
		StandardPrice:          u.StandardPrice.InexactFloat64(),
		VIPPrice:               u.VIPPrice.InexactFloat64(),
		StandardPriceFormatted: FormatPrice(u.StandardPrice),
		VIPPriceFormatted:      FormatPrice(u.VIPPrice),
		StandardAvailable:      u.StandardAvailable,
		VIPAvailable:           u.VIPAvailable,
		AvailableTickets:       u.StandardAvailable + u.VIPAvailable,
	}
}

// FormatPrice renders an amount in whole shillings with thousands separators,
// e.g. "KSh 12,500".
func FormatPrice(amount decimal.Decimal) string {
	digits := amount.Round(0).Abs().String()

	var b strings.Builder
	b.WriteString("KSh ")
	if amount.Round(0).IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
