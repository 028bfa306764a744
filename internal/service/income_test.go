package service

import (
	"errors"
	"testing"

	"github.com/darril21/expense-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncomeCreateValidation(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "inc@test.dev")
	svc := NewIncomeService(db)

	var ve *ValidationError

	_, err := svc.Create(user.ID, IncomeInput{Type: models.IncomeTypeSalary, Date: day(2024, 6, 1)})
	require.ErrorAs(t, err, &ve, "missing amount")

	_, err = svc.Create(user.ID, IncomeInput{Amount: 100, Date: day(2024, 6, 1)})
	require.ErrorAs(t, err, &ve, "missing type")

	_, err = svc.Create(user.ID, IncomeInput{Amount: 100, Type: models.IncomeTypeSalary})
	require.ErrorAs(t, err, &ve, "missing date")

	_, err = svc.Create(user.ID, IncomeInput{Amount: 100, Type: "lottery", Date: day(2024, 6, 1)})
	require.ErrorAs(t, err, &ve, "unknown type")

	for _, typ := range []string{
		models.IncomeTypeSalary,
		models.IncomeTypeReimbursement,
		models.IncomeTypeOther,
	} {
		_, err = svc.Create(user.ID, IncomeInput{Amount: 100, Type: typ, Date: day(2024, 6, 1)})
		require.NoError(t, err, "type %s", typ)
	}
}

func TestIncomeListReturnsMonthTotal(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "inc@test.dev")
	svc := NewIncomeService(db)

	createTestIncome(t, db, user.ID, 5000, models.IncomeTypeSalary, day(2024, 6, 1))
	createTestIncome(t, db, user.ID, 250.50, models.IncomeTypeReimbursement, day(2024, 6, 20))
	createTestIncome(t, db, user.ID, 999, models.IncomeTypeOther, day(2024, 7, 1)) // outside

	incomes, total, err := svc.List(user.ID, 2024, 6)
	require.NoError(t, err)
	require.Len(t, incomes, 2)
	assert.InDelta(t, 5250.50, total, 1e-9)
	// date descending
	assert.Equal(t, 20, incomes[0].Date.Day())

	incomes, total, err = svc.List(user.ID, 2024, 1)
	require.NoError(t, err)
	assert.Empty(t, incomes)
	assert.Zero(t, total)
}

func TestIncomeUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "inc@test.dev")
	svc := NewIncomeService(db)

	income := createTestIncome(t, db, user.ID, 5000, models.IncomeTypeSalary, day(2024, 6, 1))

	typ := models.IncomeTypeReimbursement
	updated, err := svc.Update(user.ID, income.ID, IncomeUpdate{Type: &typ})
	require.NoError(t, err)
	assert.Equal(t, models.IncomeTypeReimbursement, updated.Type)
	assert.InDelta(t, 5000.0, updated.Amount, 1e-9)

	var ve *ValidationError
	bad := "lottery"
	_, err = svc.Update(user.ID, income.ID, IncomeUpdate{Type: &bad})
	require.ErrorAs(t, err, &ve)
}

func TestIncomeOwnershipIsolation(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice@test.dev")
	bob := createTestUser(t, db, "bob@test.dev")
	svc := NewIncomeService(db)

	income := createTestIncome(t, db, alice.ID, 5000, models.IncomeTypeSalary, day(2024, 6, 1))

	_, err := svc.Update(bob.ID, income.ID, IncomeUpdate{Amount: floatPtr(1)})
	require.True(t, errors.Is(err, ErrNotFound))

	err = svc.Delete(bob.ID, income.ID)
	require.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, svc.Delete(alice.ID, income.ID))
}
