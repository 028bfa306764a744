package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/darril21/expense-tracker/internal/database"
	"github.com/darril21/expense-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema. The
// shared-cache DSN keeps the database alive across pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open test database")
	require.NoError(t, database.AutoMigrate(db), "migrate test database")
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := models.User{
		Email:             email,
		PasswordHash:      "x",
		BillingCycleStart: 1,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestCategory(t *testing.T, db *gorm.DB, userID uint, name string) *models.Category {
	t.Helper()

	category := models.Category{
		UserID: userID,
		Name:   name,
		Color:  models.DefaultCategoryColor,
	}
	require.NoError(t, db.Create(&category).Error)
	return &category
}

func createTestExpense(t *testing.T, db *gorm.DB, userID, categoryID uint, amount float64, date time.Time) *models.Expense {
	t.Helper()

	expense := models.Expense{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		Date:       date,
	}
	require.NoError(t, db.Create(&expense).Error)
	return &expense
}

func createTestIncome(t *testing.T, db *gorm.DB, userID uint, amount float64, incomeType string, date time.Time) *models.Income {
	t.Helper()

	income := models.Income{
		UserID: userID,
		Amount: amount,
		Type:   incomeType,
		Date:   date,
	}
	require.NoError(t, db.Create(&income).Error)
	return &income
}

func day(year, month, d int) time.Time {
	return time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC)
}
