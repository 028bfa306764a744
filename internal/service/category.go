package service

import (
	"fmt"
	"strings"

	"github.com/darril21/expense-tracker/internal/models"

	"gorm.io/gorm"
)

// CategoryService implements ownership-checked CRUD for expense categories.
// Every operation takes the resolved owning-user ID explicitly.
type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// CategoryInput is the payload for creating a category.
type CategoryInput struct {
	Name  string
	Color string
	Icon  string
}

// CategoryUpdate carries a partial update. Nil fields keep their prior
// value; non-nil fields are applied even when empty.
type CategoryUpdate struct {
	Name  *string
	Color *string
	Icon  *string
}

// CategoryWithCount is a category annotated with its expense reference count.
type CategoryWithCount struct {
	models.Category
	ExpenseCount int64 `json:"expenseCount"`
}

// Create stores a new category for userID. The name must be non-empty and
// unique within the user's categories, compared exactly as stored.
func (s *CategoryService) Create(userID uint, in CategoryInput) (*models.Category, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, validationf("category name is required")
	}

	var count int64
	if err := s.db.Model(&models.Category{}).
		Where("user_id = ? AND name = ?", userID, in.Name).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check category name: %w", err)
	}
	if count > 0 {
		return nil, conflictf("category with this name already exists")
	}

	if in.Color == "" {
		in.Color = models.DefaultCategoryColor
	}

	category := models.Category{
		UserID: userID,
		Name:   in.Name,
		Color:  in.Color,
		Icon:   in.Icon,
	}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &category, nil
}

// Update applies a partial update to the user's category. Absent and foreign
// categories both report ErrNotFound.
func (s *CategoryService) Update(userID, id uint, upd CategoryUpdate) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).
		First(&category).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load category: %w", err)
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, validationf("category name cannot be empty")
		}
		if name != category.Name {
			var count int64
			if err := s.db.Model(&models.Category{}).
				Where("user_id = ? AND name = ? AND id <> ?", userID, name, id).
				Count(&count).Error; err != nil {
				return nil, fmt.Errorf("check category name: %w", err)
			}
			if count > 0 {
				return nil, conflictf("category with this name already exists")
			}
		}
		category.Name = name
	}
	if upd.Color != nil {
		category.Color = *upd.Color
	}
	if upd.Icon != nil {
		category.Icon = *upd.Icon
	}

	if err := s.db.Save(&category).Error; err != nil {
		return nil, fmt.Errorf("save category: %w", err)
	}
	return &category, nil
}

// Delete removes the user's category unless expenses still reference it.
func (s *CategoryService) Delete(userID, id uint) error {
	var category models.Category
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).
		First(&category).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("load category: %w", err)
	}

	var expenseCount int64
	if err := s.db.Model(&models.Expense{}).
		Where("category_id = ?", id).
		Count(&expenseCount).Error; err != nil {
		return fmt.Errorf("count expenses: %w", err)
	}
	if expenseCount > 0 {
		return conflictf(fmt.Sprintf(
			"cannot delete category with %d expenses, delete or move expenses first", expenseCount))
	}

	if err := s.db.Delete(&category).Error; err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// List returns the user's categories ordered by name, each with its current
// expense count.
func (s *CategoryService) List(userID uint) ([]CategoryWithCount, error) {
	var categories []models.Category
	if err := s.db.Where("user_id = ?", userID).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	type catCount struct {
		CategoryID uint
		Count      int64
	}
	var counts []catCount
	if err := s.db.Model(&models.Expense{}).
		Select("category_id, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("category_id").
		Scan(&counts).Error; err != nil {
		return nil, fmt.Errorf("count expenses: %w", err)
	}
	countByID := make(map[uint]int64, len(counts))
	for _, cc := range counts {
		countByID[cc.CategoryID] = cc.Count
	}

	out := make([]CategoryWithCount, 0, len(categories))
	for _, cat := range categories {
		out = append(out, CategoryWithCount{
			Category:     cat,
			ExpenseCount: countByID[cat.ID],
		})
	}
	return out, nil
}
