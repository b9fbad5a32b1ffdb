package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"itickets/internal/events"
	"itickets/internal/shared/config"
	"itickets/internal/shared/constants"
	"itickets/internal/shared/database"
	"itickets/internal/tickets"
	"itickets/internal/users"
	"itickets/internal/venues"
	"itickets/pkg/cache"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Seeder struct {
	db  *database.DB
	cfg *config.Config
}

func main() {
	fmt.Println("🌱 Starting iTickets Database Seeder...")

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db, cfg: cfg}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates every table, children first
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"booking_tickets",
		"bookings",
		"ticket_types",
		"events",
		"venues",
		"users",
	}

	return s.db.PostgreSQL.Transaction(func(tx *gorm.DB) error {
		for _, table := range tables {
			fmt.Printf("  Truncating table: %s\n", table)
			if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
				return fmt.Errorf("failed to truncate table %s: %w", table, err)
			}
		}
		return nil
	})
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	organizerID, err := s.SeedOrganizer()
	if err != nil {
		return fmt.Errorf("failed to seed organizer: %w", err)
	}

	venueIDs, err := s.SeedVenues()
	if err != nil {
		return fmt.Errorf("failed to seed venues: %w", err)
	}

	if err := s.SeedEvents(organizerID, venueIDs); err != nil {
		return fmt.Errorf("failed to seed events: %w", err)
	}

	// stale listings would hide the new events until the TTL lapses
	if rdb := s.db.GetRedis(); rdb != nil {
		if err := cache.NewService(rdb).DeletePattern(ctx, constants.CACHE_PREFIX+":*"); err != nil {
			log.Printf("Warning: Failed to clear Redis cache: %v", err)
		}
	}

	return nil
}

// SeedOrganizer creates the account that owns the seeded events
func (s *Seeder) SeedOrganizer() (int64, error) {
	fmt.Println("  👤 Seeding organizer...")

	password := os.Getenv("SEED_ORGANIZER_PASSWORD")
	if password == "" {
		password = "qwerty"
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}
	hash := string(hashed)

	organizer := users.User{
		FullName: "iTechs Events",
		Email:    "events@itechs.co.ke",
		Phone:    "0700000000",
		Password: &hash,
		Role:     users.RoleOrganizer,
	}
	if err := s.db.PostgreSQL.Create(&organizer).Error; err != nil {
		return 0, fmt.Errorf("failed to create organizer: %w", err)
	}

	fmt.Printf("    ✅ Created organizer: %s\n", organizer.Email)
	return organizer.ID, nil
}

// SeedVenues creates the venues events are held at
func (s *Seeder) SeedVenues() ([]int64, error) {
	fmt.Println("  🏟️  Seeding venues...")

	data := []venues.Venue{
		{Name: "KICC Amphitheatre", Address: "Harambee Avenue", City: "Nairobi", Capacity: 1200, Description: "Indoor amphitheatre in the city centre"},
		{Name: "Carnivore Grounds", Address: "Langata Road", City: "Nairobi", Capacity: 5000, Description: "Open-air grounds for festivals"},
	}

	ids := make([]int64, 0, len(data))
	for i := range data {
		if err := s.db.PostgreSQL.Create(&data[i]).Error; err != nil {
			return nil, fmt.Errorf("failed to create venue %s: %w", data[i].Name, err)
		}
		ids = append(ids, data[i].ID)
		fmt.Printf("    ✅ Created venue: %s\n", data[i].Name)
	}
	return ids, nil
}

// SeedEvents creates three upcoming published events and one draft, each
// with both ticket categories
func (s *Seeder) SeedEvents(organizerID int64, venueIDs []int64) error {
	fmt.Println("  🎫 Seeding events...")

	now := time.Now().UTC().Truncate(time.Hour)
	data := []struct {
		title, category string
		venue           int64
		in              time.Duration
		standard, vip   int64
		status          events.EventStatus
	}{
		{"Sauti Sol Live", "Music", venueIDs[1], 7 * 24 * time.Hour, 2500, 7500, events.EventStatusPublished},
		{"Nairobi Tech Summit", "Conference", venueIDs[0], 14 * 24 * time.Hour, 1000, 5000, events.EventStatusPublished},
		{"Churchill Show", "Comedy", venueIDs[0], 21 * 24 * time.Hour, 1500, 4000, events.EventStatusPublished},
		{"Blankets & Wine", "Music", venueIDs[1], 28 * 24 * time.Hour, 3000, 8000, events.EventStatusDraft},
	}

	for _, d := range data {
		event := events.Event{
			OrganizerID:   organizerID,
			VenueID:       d.venue,
			Title:         d.title,
			Description:   d.category + " event hosted by iTechs Events",
			Category:      d.category,
			EventDate:     now.Add(d.in),
			StandardPrice: decimal.NewFromInt(d.standard),
			VIPPrice:      decimal.NewFromInt(d.vip),
			Status:        d.status,
		}
		if err := s.db.PostgreSQL.Create(&event).Error; err != nil {
			return fmt.Errorf("failed to create event %s: %w", d.title, err)
		}

		for _, category := range tickets.Categories {
			price := event.StandardPrice
			if category == tickets.CategoryVIP {
				price = event.VIPPrice
			}
			ticketType := tickets.TicketType{
				EventID:           event.ID,
				TypeName:          category,
				Price:             price,
				AvailableQuantity: category.DefaultCapacity(s.cfg.Booking.StandardDefaultCapacity, s.cfg.Booking.VIPDefaultCapacity),
			}
			if err := s.db.PostgreSQL.Create(&ticketType).Error; err != nil {
				return fmt.Errorf("failed to create %s tickets for %s: %w", category, d.title, err)
			}
		}

		fmt.Printf("    ✅ Created event: %s (%s)\n", event.Title, event.Status)
	}
	return nil
}
