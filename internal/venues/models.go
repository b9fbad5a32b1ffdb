package venues

import "time"

// Venue is where an event takes place. The catalog joins it into listings.
type Venue struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null;size:255"`
	Address     string    `json:"address" gorm:"type:text"`
	City        string    `json:"city" gorm:"size:100;index"`
	Capacity    int       `json:"capacity" gorm:"not null;default:0;check:chk_venues_capacity,capacity >= 0"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
