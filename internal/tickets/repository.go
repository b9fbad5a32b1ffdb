package tickets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInsufficientInventory = errors.New("insufficient inventory")
	ErrInvalidQuantity       = errors.New("quantity must be positive")
	ErrInvalidCategory       = errors.New("unknown ticket category")
	ErrTicketTypeNotResolved = errors.New("ticket type could not be resolved")
)

type Repository interface {
	GetOrCreate(ctx context.Context, eventID int64, category Category, unitPrice decimal.Decimal, defaultCapacity int) (int64, error)
	Reserve(ctx context.Context, ticketTypeID int64, quantity int) error
	GetByEvent(ctx context.Context, eventID int64) ([]TicketType, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository binds the ledger to db, which may be a transaction handle
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetOrCreate returns the ticket type for (eventID, category), creating it
// with unitPrice and defaultCapacity when absent. Price and capacity of an
// existing row are left untouched.
func (r *repository) GetOrCreate(ctx context.Context, eventID int64, category Category, unitPrice decimal.Decimal, defaultCapacity int) (int64, error) {
	if !category.IsValid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	var id int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO ticket_types (event_id, type_name, price, available_quantity, sold_quantity, created_at, updated_at)
		VALUES (?, ?, ?, ?, 0, NOW(), NOW())
		ON CONFLICT (event_id, type_name) DO NOTHING
		RETURNING id`,
		eventID, category, unitPrice, defaultCapacity,
	).Row().Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("insert ticket type: %w", err)
	}

	err = r.db.WithContext(ctx).Raw(
		`SELECT id FROM ticket_types WHERE event_id = ? AND type_name = ?`, eventID, category,
	).Row().Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrTicketTypeNotResolved
		}
		return 0, fmt.Errorf("select ticket type: %w", err)
	}
	return id, nil
}

// Reserve adds quantity to the sold count in one conditional update. The row
// lock taken by UPDATE serializes concurrent reservations of the same ticket
// type, and the predicate is re-evaluated against the committed count, so
// the sold count can never pass the available count.
func (r *repository) Reserve(ctx context.Context, ticketTypeID int64, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE ticket_types SET sold_quantity = sold_quantity + ?, updated_at = NOW()
		WHERE id = ? AND sold_quantity + ? <= available_quantity`,
		quantity, ticketTypeID, quantity,
	)
	if result.Error != nil {
		return fmt.Errorf("reserve tickets: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInsufficientInventory
	}
	return nil
}

func (r *repository) GetByEvent(ctx context.Context, eventID int64) ([]TicketType, error) {
	var types []TicketType
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("id ASC").
		Find(&types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}
