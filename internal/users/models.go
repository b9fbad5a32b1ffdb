package users

import (
	"strings"
	"time"
)

type Role string

const (
	RoleCustomer  Role = "customer"
	RoleOrganizer Role = "organizer"
)

// User is a party known to the system. Customers are created on their
// first booking, keyed by email; organizers own events.
type User struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	FullName  string    `json:"full_name" gorm:"not null;size:255"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Phone     string    `json:"phone" gorm:"size:50"`
	IDNumber  string    `json:"id_number" gorm:"size:50"`
	Password  *string   `json:"-"` // only organizers sign in
	Role      Role      `json:"role" gorm:"type:varchar(20);not null;default:'customer'"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// CustomerDetails is the identity a booking submits for its customer
type CustomerDetails struct {
	FullName string
	Email    string
	Phone    string
	IDNumber string
}

// Normalize trims surrounding whitespace from every field
func (d CustomerDetails) Normalize() CustomerDetails {
	return CustomerDetails{
		FullName: strings.TrimSpace(d.FullName),
		Email:    strings.TrimSpace(d.Email),
		Phone:    strings.TrimSpace(d.Phone),
		IDNumber: strings.TrimSpace(d.IDNumber),
	}
}
