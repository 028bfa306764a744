package service

import (
	"fmt"
	"time"

	"github.com/darril21/expense-tracker/internal/models"
	"github.com/darril21/expense-tracker/internal/util"

	"gorm.io/gorm"
)

// IncomeService mirrors the expense service without a category linkage.
type IncomeService struct {
	db *gorm.DB
}

func NewIncomeService(db *gorm.DB) *IncomeService {
	return &IncomeService{db: db}
}

// IncomeInput is the payload for creating an income.
type IncomeInput struct {
	Amount float64
	Type   string
	Date   time.Time
	Note   string
}

// IncomeUpdate carries a partial update. Nil fields keep their prior value.
type IncomeUpdate struct {
	Amount *float64
	Type   *string
	Date   *time.Time
	Note   *string
}

func validIncomeType(t string) bool {
	switch t {
	case models.IncomeTypeSalary, models.IncomeTypeReimbursement, models.IncomeTypeOther:
		return true
	}
	return false
}

// Create stores a new income. Amount, type and date are required; the type
// must be one of salary, reimbursement or other.
func (s *IncomeService) Create(userID uint, in IncomeInput) (*models.Income, error) {
	if err := util.ValidateAmount(in.Amount); err != nil {
		return nil, validationf("amount, type, and date are required")
	}
	if in.Date.IsZero() {
		return nil, validationf("amount, type, and date are required")
	}
	if in.Type == "" {
		return nil, validationf("amount, type, and date are required")
	}
	if !validIncomeType(in.Type) {
		return nil, validationf("type must be salary, reimbursement or other")
	}

	income := models.Income{
		UserID: userID,
		Amount: in.Amount,
		Type:   in.Type,
		Date:   in.Date,
		Note:   in.Note,
	}
	if err := s.db.Create(&income).Error; err != nil {
		return nil, fmt.Errorf("create income: %w", err)
	}
	return &income, nil
}

// Update applies a partial update to the user's income.
func (s *IncomeService) Update(userID, id uint, upd IncomeUpdate) (*models.Income, error) {
	var income models.Income
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).
		First(&income).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load income: %w", err)
	}

	if upd.Amount != nil {
		if err := util.ValidateAmount(*upd.Amount); err != nil {
			return nil, validationf("invalid amount")
		}
		income.Amount = *upd.Amount
	}
	if upd.Type != nil {
		if !validIncomeType(*upd.Type) {
			return nil, validationf("type must be salary, reimbursement or other")
		}
		income.Type = *upd.Type
	}
	if upd.Date != nil {
		if upd.Date.IsZero() {
			return nil, validationf("invalid date")
		}
		income.Date = *upd.Date
	}
	if upd.Note != nil {
		income.Note = *upd.Note
	}

	if err := s.db.Save(&income).Error; err != nil {
		return nil, fmt.Errorf("save income: %w", err)
	}
	return &income, nil
}

// Delete removes the user's income.
func (s *IncomeService) Delete(userID, id uint) error {
	var income models.Income
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).
		First(&income).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("load income: %w", err)
	}

	if err := s.db.Delete(&income).Error; err != nil {
		return fmt.Errorf("delete income: %w", err)
	}
	return nil
}

// List returns the user's incomes for the calendar month, date descending,
// together with their sum.
func (s *IncomeService) List(userID uint, year, month int) ([]models.Income, float64, error) {
	p := CalendarPeriod(year, month)

	var incomes []models.Income
	if err := s.db.Where("user_id = ? AND date >= ? AND date < ?", userID, p.Start, p.End).
		Order("date DESC, id DESC").
		Find(&incomes).Error; err != nil {
		return nil, 0, fmt.Errorf("list incomes: %w", err)
	}

	var total float64
	for _, inc := range incomes {
		total += inc.Amount
	}
	return incomes, total, nil
}
