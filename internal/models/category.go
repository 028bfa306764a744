package models

import "time"

// DefaultCategoryColor is used when a category is created without a color.
const DefaultCategoryColor = "#6366f1"

// Category represents an expense category. Names are unique per owning user
// (enforced in the service layer, exactly as stored).
type Category struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"index;not null" json:"userId"`
	Name   string `gorm:"size:64;not null" json:"name"`
	Color  string `gorm:"size:16;not null" json:"color"`
	Icon   string `gorm:"size:16" json:"icon"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
