package models

import "time"

// Expense represents a single spend record. Time-of-day on Date is carried
// but not semantically used; filtering works on calendar-day boundaries.
type Expense struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"userId"`
	CategoryID uint      `gorm:"index;not null" json:"categoryId"`
	Amount     float64   `gorm:"not null" json:"amount"`
	Date       time.Time `gorm:"index;not null" json:"date"`
	Note       string    `gorm:"size:255" json:"note"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Category Category `gorm:"constraint:OnDelete:RESTRICT" json:"category"`
}
