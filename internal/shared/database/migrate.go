package database

import (
	"fmt"

	"itickets/internal/bookings"
	"itickets/internal/events"
	"itickets/internal/tickets"
	"itickets/internal/users"
	"itickets/internal/venues"

	"gorm.io/gorm"
)

// Migrate creates or updates every table, parents first, then adds the
// constraints AutoMigrate cannot express
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&venues.Venue{},
		&users.User{},
		&events.Event{},
		&tickets.TicketType{},
		&bookings.Booking{},
		&bookings.LineItem{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return MigrateConstraints(db)
}
