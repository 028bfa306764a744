package models

import "time"

// User represents an application user.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:128;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Name         string    `gorm:"size:64" json:"name"`

	// BillingCycleStart is the configured day of month (1-28) a user's
	// billing period begins on. Defaults to 1.
	BillingCycleStart int `gorm:"not null;default:1" json:"billingCycleStart"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
