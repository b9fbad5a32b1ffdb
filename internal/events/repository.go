package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"itickets/internal/tickets"

	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found or not available for booking")

type Repository interface {
	GetPublishedEvent(ctx context.Context, id int64) (*Event, error)
	ListUpcoming(ctx context.Context, now time.Time) ([]UpcomingEvent, error)
}

// DefaultCapacities is the availability reported for a category whose ticket
// type has not been created yet
type DefaultCapacities struct {
	Standard int
	VIP      int
}

type repository struct {
	db       *gorm.DB
	defaults DefaultCapacities
}

func NewRepository(db *gorm.DB, defaults DefaultCapacities) Repository {
	return &repository{db: db, defaults: defaults}
}

// GetPublishedEvent treats drafts, cancelled events and missing ids alike
func (r *repository) GetPublishedEvent(ctx context.Context, id int64) (*Event, error) {
	var event Event
	err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, EventStatusPublished).
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("get published event: %w", err)
	}
	return &event, nil
}

func (r *repository) ListUpcoming(ctx context.Context, now time.Time) ([]UpcomingEvent, error) {
	var rows []UpcomingEvent

	err := r.db.WithContext(ctx).
		Table("events AS e").
		Select(`e.id, e.title, e.description, e.category, e.event_date,
			e.standard_price, e.vip_price, e.image_url,
			v.name AS venue_name, v.address AS venue_address, v.city AS venue_city,
			COALESCE(MAX(CASE WHEN tt.type_name = ? THEN tt.available_quantity - tt.sold_quantity END), ?) AS standard_available,
			COALESCE(MAX(CASE WHEN tt.type_name = ? THEN tt.available_quantity - tt.sold_quantity END), ?) AS vip_available`,
			tickets.CategoryStandard, r.defaults.Standard,
			tickets.CategoryVIP, r.defaults.VIP,
		).
		Joins("JOIN venues v ON v.id = e.venue_id").
		Joins("LEFT JOIN ticket_types tt ON tt.event_id = e.id").
		Where("e.status = ? AND e.event_date >= ?", EventStatusPublished, now).
		Group("e.id, v.id").
		Order("e.event_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}

	return rows, nil
}
