package service

import "time"

// Period is a half-open [Start, End) date range covering one reporting
// month. All store queries filter with date >= Start AND date < End.
type Period struct {
	Start time.Time
	End   time.Time
}

// Days returns the number of calendar days the period spans.
func (p Period) Days() int {
	return int(p.End.Sub(p.Start).Hours() / 24)
}

// CalendarPeriod returns the plain calendar month year-month as a period.
func CalendarPeriod(year, month int) Period {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return Period{Start: start, End: start.AddDate(0, 1, 0)}
}

// BillingPeriod returns the period labeled year-month for a user whose
// billing cycle begins on startDay (1-28). The period runs from startDay of
// the nominal month to startDay of the next month. Out-of-range startDay
// falls back to 1, which makes it equal to the calendar month.
func BillingPeriod(year, month, startDay int) Period {
	if startDay < 1 || startDay > 28 {
		startDay = 1
	}
	start := time.Date(year, time.Month(month), startDay, 0, 0, 0, 0, time.UTC)
	return Period{Start: start, End: start.AddDate(0, 1, 0)}
}

// previousMonth rolls a nominal month label back by one, with year rollback
// at January.
func previousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}
