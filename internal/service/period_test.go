package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalendarPeriod(t *testing.T) {
	p := CalendarPeriod(2024, 2)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), p.End)
	assert.Equal(t, 29, p.Days())

	assert.Equal(t, 28, CalendarPeriod(2023, 2).Days())
	assert.Equal(t, 31, CalendarPeriod(2024, 12).Days())

	// December rolls into the next year
	p = CalendarPeriod(2024, 12)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), p.End)
}

func TestBillingPeriod(t *testing.T) {
	p := BillingPeriod(2024, 2, 15)
	assert.Equal(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), p.End)

	// out-of-range start days fall back to the calendar month
	assert.Equal(t, CalendarPeriod(2024, 2), BillingPeriod(2024, 2, 0))
	assert.Equal(t, CalendarPeriod(2024, 2), BillingPeriod(2024, 2, 29))
	assert.Equal(t, CalendarPeriod(2024, 2), BillingPeriod(2024, 2, 1))
}

func TestPreviousMonth(t *testing.T) {
	y, m := previousMonth(2024, 6)
	assert.Equal(t, 2024, y)
	assert.Equal(t, 5, m)

	// January rolls back into the previous year
	y, m = previousMonth(2024, 1)
	assert.Equal(t, 2023, y)
	assert.Equal(t, 12, m)
}
