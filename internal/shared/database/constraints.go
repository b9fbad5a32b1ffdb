package database

import (
	"fmt"

	"gorm.io/gorm"
)

// Postgres has no ADD CONSTRAINT IF NOT EXISTS, so foreign keys are added
// in a block that swallows duplicate_object
const addForeignKey = `DO $$ BEGIN
	ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (id) ON DELETE %s;
EXCEPTION WHEN duplicate_object THEN NULL;
END $$`

type foreignKey struct {
	table, name, column, references, onDelete string
}

var foreignKeys = []foreignKey{
	{"events", "fk_events_venue", "venue_id", "venues", "RESTRICT"},
	{"events", "fk_events_organizer", "organizer_id", "users", "RESTRICT"},
	{"ticket_types", "fk_ticket_types_event", "event_id", "events", "CASCADE"},
	{"bookings", "fk_bookings_user", "user_id", "users", "RESTRICT"},
	{"bookings", "fk_bookings_event", "event_id", "events", "RESTRICT"},
	{"booking_tickets", "fk_booking_tickets_ticket_type", "ticket_type_id", "ticket_types", "RESTRICT"},
}

var indexes = []string{
	// the listing query only ever reads published events by date
	`CREATE INDEX IF NOT EXISTS idx_events_published_date ON events (event_date) WHERE status = 'published'`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_event_created ON bookings (event_id, created_at)`,
}

// MigrateConstraints adds the foreign keys and partial indexes the models
// do not declare
func MigrateConstraints(db *gorm.DB) error {
	for _, fk := range foreignKeys {
		stmt := fmt.Sprintf(addForeignKey, fk.table, fk.name, fk.column, fk.references, fk.onDelete)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", fk.name, err)
		}
	}

	for _, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	return nil
}
