package service

import (
	"errors"
	"testing"

	"github.com/darril21/expense-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCategoryCreateDefaults(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "cat@test.dev")
	svc := NewCategoryService(db)

	category, err := svc.Create(user.ID, CategoryInput{Name: "Groceries"})
	require.NoError(t, err)
	assert.Equal(t, "Groceries", category.Name)
	assert.Equal(t, models.DefaultCategoryColor, category.Color)
	assert.Empty(t, category.Icon)
	assert.Equal(t, user.ID, category.UserID)
}

func TestCategoryCreateValidation(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "cat@test.dev")
	svc := NewCategoryService(db)

	var ve *ValidationError
	_, err := svc.Create(user.ID, CategoryInput{Name: "   "})
	require.ErrorAs(t, err, &ve)
}

func TestCategoryCreateDuplicateName(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "cat@test.dev")
	svc := NewCategoryService(db)

	_, err := svc.Create(user.ID, CategoryInput{Name: "Groceries"})
	require.NoError(t, err)

	var ce *ConflictError
	_, err = svc.Create(user.ID, CategoryInput{Name: "Groceries"})
	require.ErrorAs(t, err, &ce)

	// names compare exactly as stored, different case is a different name
	_, err = svc.Create(user.ID, CategoryInput{Name: "groceries"})
	require.NoError(t, err)

	// another user can reuse the name
	other := createTestUser(t, db, "other@test.dev")
	_, err = svc.Create(other.ID, CategoryInput{Name: "Groceries"})
	require.NoError(t, err)
}

func TestCategoryUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "cat@test.dev")
	svc := NewCategoryService(db)
	category := createTestCategory(t, db, user.ID, "Groceries")

	// only color supplied: name and icon keep their prior values
	updated, err := svc.Update(user.ID, category.ID, CategoryUpdate{Color: strPtr("#000000")})
	require.NoError(t, err)
	assert.Equal(t, "Groceries", updated.Name)
	assert.Equal(t, "#000000", updated.Color)

	// an explicitly supplied empty icon is applied
	require.NoError(t, db.Model(category).Update("icon", "🛒").Error)
	updated, err = svc.Update(user.ID, category.ID, CategoryUpdate{Icon: strPtr("")})
	require.NoError(t, err)
	assert.Empty(t, updated.Icon)

	// an empty name is never applied
	var ve *ValidationError
	_, err = svc.Update(user.ID, category.ID, CategoryUpdate{Name: strPtr("")})
	require.ErrorAs(t, err, &ve)
}

func TestCategoryUpdateForeignIsNotFound(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice@test.dev")
	bob := createTestUser(t, db, "bob@test.dev")
	svc := NewCategoryService(db)
	category := createTestCategory(t, db, alice.ID, "Groceries")

	_, err := svc.Update(bob.ID, category.ID, CategoryUpdate{Name: strPtr("Stolen")})
	require.True(t, errors.Is(err, ErrNotFound))

	_, err = svc.Update(alice.ID, 9999, CategoryUpdate{Name: strPtr("Ghost")})
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestCategoryDeleteGuard(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "cat@test.dev")
	catSvc := NewCategoryService(db)
	expSvc := NewExpenseService(db)
	category := createTestCategory(t, db, user.ID, "Groceries")

	expense, err := expSvc.Create(user.ID, ExpenseInput{
		Amount:     50,
		Date:       day(2024, 6, 1),
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	// blocked while an expense references the category
	var ce *ConflictError
	err = catSvc.Delete(user.ID, category.ID)
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Msg, "1 expense")

	// removing the expense unblocks deletion
	require.NoError(t, expSvc.Delete(user.ID, expense.ID))
	require.NoError(t, catSvc.Delete(user.ID, category.ID))

	err = catSvc.Delete(user.ID, category.ID)
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestCategoryDeleteForeignIsNotFound(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice@test.dev")
	bob := createTestUser(t, db, "bob@test.dev")
	category := createTestCategory(t, db, alice.ID, "Groceries")

	err := NewCategoryService(db).Delete(bob.ID, category.ID)
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestCategoryListOrderAndCounts(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "cat@test.dev")
	svc := NewCategoryService(db)

	bills := createTestCategory(t, db, user.ID, "Bills")
	food := createTestCategory(t, db, user.ID, "Food & Drinks")
	createTestCategory(t, db, user.ID, "Transportation")

	createTestExpense(t, db, user.ID, food.ID, 10, day(2024, 6, 1))
	createTestExpense(t, db, user.ID, food.ID, 20, day(2024, 6, 2))
	createTestExpense(t, db, user.ID, bills.ID, 30, day(2024, 6, 3))

	// a foreign user's expense never counts
	other := createTestUser(t, db, "other@test.dev")
	otherCat := createTestCategory(t, db, other.ID, "Bills")
	createTestExpense(t, db, other.ID, otherCat.ID, 99, day(2024, 6, 4))

	list, err := svc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Bills", list[0].Name)
	assert.Equal(t, int64(1), list[0].ExpenseCount)
	assert.Equal(t, "Food & Drinks", list[1].Name)
	assert.Equal(t, int64(2), list[1].ExpenseCount)
	assert.Equal(t, "Transportation", list[2].Name)
	assert.Equal(t, int64(0), list[2].ExpenseCount)
}
