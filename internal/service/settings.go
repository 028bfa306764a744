package service

import (
	"fmt"

	"github.com/darril21/expense-tracker/internal/models"

	"gorm.io/gorm"
)

// SettingsService reads and writes the per-user billing cycle setting.
type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// Get returns the user's billing cycle start day. Unset values report 1.
func (s *SettingsService) Get(userID uint) (int, error) {
	var user models.User
	if err := s.db.Select("billing_cycle_start").First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("load settings: %w", err)
	}
	if user.BillingCycleStart < 1 {
		return 1, nil
	}
	return user.BillingCycleStart, nil
}

// Put updates the user's billing cycle start day, which must be 1-28.
func (s *SettingsService) Put(userID uint, billingCycleStart int) (int, error) {
	if billingCycleStart < 1 || billingCycleStart > 28 {
		return 0, validationf("billing cycle start must be between 1 and 28")
	}

	res := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("billing_cycle_start", billingCycleStart)
	if res.Error != nil {
		return 0, fmt.Errorf("update settings: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, ErrNotFound
	}
	return billingCycleStart, nil
}
