package bookings

import (
	"context"
	"errors"
	"fmt"

	"itickets/internal/tickets"
	"itickets/internal/users"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	// CreateBooking inserts b unless its reference is taken. It reports
	// false, without error, on a reference collision.
	CreateBooking(ctx context.Context, b *Booking) (bool, error)
	AddLineItem(ctx context.Context, item *LineItem) error
}

// CustomerRegistry resolves the customer a booking belongs to
type CustomerRegistry interface {
	FindOrCreateCustomer(ctx context.Context, details users.CustomerDetails) (int64, error)
}

// TicketLedger tracks per-category inventory
type TicketLedger interface {
	GetOrCreate(ctx context.Context, eventID int64, category tickets.Category, unitPrice decimal.Decimal, defaultCapacity int) (int64, error)
	Reserve(ctx context.Context, ticketTypeID int64, quantity int) error
}

// Tx exposes the repositories bound to one open transaction
type Tx struct {
	Customers CustomerRegistry
	Ledger    TicketLedger
	Bookings  Repository
}

// Store runs fn inside a single database transaction. The transaction
// commits only if fn returns nil and is rolled back on any error or panic.
type Store interface {
	WithinTransaction(ctx context.Context, fn func(tx Tx) error) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateBooking(ctx context.Context, b *Booking) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "booking_reference"}},
			DoNothing: true,
		}).
		Create(b)
	if result.Error != nil {
		return false, fmt.Errorf("insert booking: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *repository) AddLineItem(ctx context.Context, item *LineItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("insert booking line item: %w", err)
	}
	return nil
}

type store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &store{db: db}
}

func (s *store) WithinTransaction(ctx context.Context, fn func(tx Tx) error) (err error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin transaction: %w", tx.Error)
	}

	done := false
	defer func() {
		if done {
			return
		}
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
		if rbErr := tx.Rollback().Error; rbErr != nil {
			err = errors.Join(err, fmt.Errorf("rollback transaction: %w", rbErr))
		}
	}()

	if err = fn(Tx{
		Customers: users.NewRepository(tx),
		Ledger:    tickets.NewRepository(tx),
		Bookings:  NewRepository(tx),
	}); err != nil {
		return err
	}

	done = true
	if err = tx.Commit().Error; err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
