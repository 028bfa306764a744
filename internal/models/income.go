package models

import "time"

// Income types accepted by the service.
const (
	IncomeTypeSalary        = "salary"
	IncomeTypeReimbursement = "reimbursement"
	IncomeTypeOther         = "other"
)

// Income represents a money-in record. Incomes have a type instead of a
// category linkage.
type Income struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	UserID uint      `gorm:"index;not null" json:"userId"`
	Amount float64   `gorm:"not null" json:"amount"`
	Type   string    `gorm:"size:16;not null" json:"type"`
	Date   time.Time `gorm:"index;not null" json:"date"`
	Note   string    `gorm:"size:255" json:"note"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
