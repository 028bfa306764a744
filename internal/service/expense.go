package service

import (
	"fmt"
	"time"

	"github.com/darril21/expense-tracker/internal/models"
	"github.com/darril21/expense-tracker/internal/util"

	"gorm.io/gorm"
)

// ExpenseService implements ownership-checked CRUD for expenses.
type ExpenseService struct {
	db *gorm.DB
}

func NewExpenseService(db *gorm.DB) *ExpenseService {
	return &ExpenseService{db: db}
}

// ExpenseInput is the payload for creating an expense.
type ExpenseInput struct {
	Amount     float64
	Date       time.Time
	CategoryID uint
	Note       string
}

// ExpenseUpdate carries a partial update. Nil fields keep their prior value.
type ExpenseUpdate struct {
	Amount     *float64
	Date       *time.Time
	CategoryID *uint
	Note       *string
}

// ExpenseFilter narrows List results. Month and Year must be set together
// to apply a calendar-month range; CategoryID of 0 means all categories.
type ExpenseFilter struct {
	Month      int
	Year       int
	CategoryID uint
}

// categoryOwnedBy reports whether the category belongs to userID. Foreign
// categories are rejected the same way as absent ones.
func categoryOwnedBy(db *gorm.DB, userID, categoryID uint) (bool, error) {
	var count int64
	if err := db.Model(&models.Category{}).
		Where("id = ? AND user_id = ?", categoryID, userID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check category owner: %w", err)
	}
	return count > 0, nil
}

// Create stores a new expense. Amount, date and category are required, and
// the category must belong to the same user.
func (s *ExpenseService) Create(userID uint, in ExpenseInput) (*models.Expense, error) {
	if err := util.ValidateAmount(in.Amount); err != nil {
		return nil, validationf("amount, date, and category are required")
	}
	if in.Date.IsZero() {
		return nil, validationf("amount, date, and category are required")
	}
	if in.CategoryID == 0 {
		return nil, validationf("amount, date, and category are required")
	}

	owned, err := categoryOwnedBy(s.db, userID, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrNotFound
	}

	expense := models.Expense{
		UserID:     userID,
		CategoryID: in.CategoryID,
		Amount:     in.Amount,
		Date:       in.Date,
		Note:       in.Note,
	}
	if err := s.db.Create(&expense).Error; err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	if err := s.db.Preload("Category").First(&expense, expense.ID).Error; err != nil {
		return nil, fmt.Errorf("load expense: %w", err)
	}
	return &expense, nil
}

// Update applies a partial update to the user's expense and returns it with
// its category joined.
func (s *ExpenseService) Update(userID, id uint, upd ExpenseUpdate) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).
		First(&expense).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load expense: %w", err)
	}

	if upd.Amount != nil {
		if err := util.ValidateAmount(*upd.Amount); err != nil {
			return nil, validationf("invalid amount")
		}
		expense.Amount = *upd.Amount
	}
	if upd.Date != nil {
		if upd.Date.IsZero() {
			return nil, validationf("invalid date")
		}
		expense.Date = *upd.Date
	}
	if upd.CategoryID != nil {
		if *upd.CategoryID == 0 {
			return nil, validationf("invalid category")
		}
		owned, err := categoryOwnedBy(s.db, userID, *upd.CategoryID)
		if err != nil {
			return nil, err
		}
		if !owned {
			return nil, ErrNotFound
		}
		expense.CategoryID = *upd.CategoryID
		// force the association to reload below
		expense.Category = models.Category{}
	}
	if upd.Note != nil {
		expense.Note = *upd.Note
	}

	if err := s.db.Save(&expense).Error; err != nil {
		return nil, fmt.Errorf("save expense: %w", err)
	}
	if err := s.db.Preload("Category").First(&expense, expense.ID).Error; err != nil {
		return nil, fmt.Errorf("load expense: %w", err)
	}
	return &expense, nil
}

// Delete removes the user's expense. Unlike categories there is no
// referential guard.
func (s *ExpenseService) Delete(userID, id uint) error {
	var expense models.Expense
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).
		First(&expense).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("load expense: %w", err)
	}

	if err := s.db.Delete(&expense).Error; err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

// List returns the user's expenses with categories joined, date descending.
func (s *ExpenseService) List(userID uint, filter ExpenseFilter) ([]models.Expense, error) {
	q := s.db.Where("user_id = ?", userID)
	if filter.Month >= 1 && filter.Month <= 12 && filter.Year > 0 {
		p := CalendarPeriod(filter.Year, filter.Month)
		q = q.Where("date >= ? AND date < ?", p.Start, p.End)
	}
	if filter.CategoryID != 0 {
		q = q.Where("category_id = ?", filter.CategoryID)
	}

	var expenses []models.Expense
	if err := q.Preload("Category").
		Order("date DESC, id DESC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}
