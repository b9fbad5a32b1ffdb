package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrCustomerNotResolved  = errors.New("customer could not be resolved")
	ErrCustomerEmailMissing = errors.New("customer email is required")
)

type Repository interface {
	FindOrCreateCustomer(ctx context.Context, details CustomerDetails) (int64, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository binds the registry to db, which may be a transaction handle
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindOrCreateCustomer returns the id of the customer owning the email,
// inserting one when none exists. The unique index on email arbitrates
// concurrent first bookings: the losing insert does nothing and the
// follow-up select sees the winner's row. An existing customer keeps the
// profile it was created with.
func (r *repository) FindOrCreateCustomer(ctx context.Context, details CustomerDetails) (int64, error) {
	details = details.Normalize()
	if details.Email == "" {
		return 0, ErrCustomerEmailMissing
	}

	var id int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO users (full_name, email, phone, id_number, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, NOW(), NOW())
		ON CONFLICT (email) DO NOTHING
		RETURNING id`,
		details.FullName, details.Email, details.Phone, details.IDNumber, RoleCustomer,
	).Row().Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("insert customer: %w", err)
	}

	err = r.db.WithContext(ctx).Raw(`SELECT id FROM users WHERE email = ?`, details.Email).Row().Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrCustomerNotResolved
		}
		return 0, fmt.Errorf("select customer: %w", err)
	}
	return id, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
