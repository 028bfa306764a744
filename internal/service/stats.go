package service

import (
	"fmt"
	"sort"

	"github.com/darril21/expense-tracker/internal/models"

	"gorm.io/gorm"
)

// StatsService computes the monthly summary. Pure read-and-compute: it
// never mutates the store and never fails on empty data.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// CategoryTotal is one row of the category breakdown.
type CategoryTotal struct {
	Category models.Category `json:"category"`
	Total    float64         `json:"total"`
	Count    int             `json:"count"`
}

// DailyAmount is one day of the dense daily series.
type DailyAmount struct {
	Day    int     `json:"day"`
	Amount float64 `json:"amount"`
}

// Summary is the aggregated monthly report. Every field is always present,
// even for months with no records.
type Summary struct {
	CurrentTotal       float64          `json:"currentTotal"`
	PreviousTotal      float64          `json:"previousTotal"`
	PercentageChange   float64          `json:"percentageChange"`
	CategoryBreakdown  []CategoryTotal  `json:"categoryBreakdown"`
	DailyData          []DailyAmount    `json:"dailyData"`
	RecentTransactions []models.Expense `json:"recentTransactions"`
	TotalIncome        float64          `json:"totalIncome"`
	Balance            float64          `json:"balance"`
	RecentIncomes      []models.Income  `json:"recentIncomes"`
	Month              int              `json:"month"`
	Year               int              `json:"year"`
}

const recentLimit = 5

// Monthly aggregates the user's expenses and incomes for the month labeled
// year-month, comparing against the month immediately before. cycleStart
// above 1 shifts both periods to the user's billing cycle; 0 or 1 keeps
// plain calendar months.
func (s *StatsService) Monthly(userID uint, year, month, cycleStart int) (*Summary, error) {
	current := BillingPeriod(year, month, cycleStart)
	prevYear, prevMonth := previousMonth(year, month)
	previous := BillingPeriod(prevYear, prevMonth, cycleStart)

	// current-period expenses with categories, most recent first
	var expenses []models.Expense
	if err := s.db.Preload("Category").
		Where("user_id = ? AND date >= ? AND date < ?", userID, current.Start, current.End).
		Order("date DESC, id DESC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}

	// previous period needs only the sum
	var previousTotal float64
	if err := s.db.Model(&models.Expense{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, previous.Start, previous.End).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&previousTotal).Error; err != nil {
		return nil, fmt.Errorf("sum previous expenses: %w", err)
	}

	// current-period incomes, most recent first
	var incomes []models.Income
	if err := s.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, current.Start, current.End).
		Order("date DESC, id DESC").
		Find(&incomes).Error; err != nil {
		return nil, fmt.Errorf("load incomes: %w", err)
	}

	var currentTotal float64
	for _, e := range expenses {
		currentTotal += e.Amount
	}
	var totalIncome float64
	for _, inc := range incomes {
		totalIncome += inc.Amount
	}

	// a zero-to-nonzero jump reports a flat +100%, never infinity
	var percentageChange float64
	switch {
	case previousTotal > 0:
		percentageChange = (currentTotal - previousTotal) / previousTotal * 100
	case currentTotal > 0:
		percentageChange = 100
	default:
		percentageChange = 0
	}

	return &Summary{
		CurrentTotal:       currentTotal,
		PreviousTotal:      previousTotal,
		PercentageChange:   percentageChange,
		CategoryBreakdown:  breakdownByCategory(expenses),
		DailyData:          dailySeries(current, expenses),
		RecentTransactions: firstExpenses(expenses, recentLimit),
		TotalIncome:        totalIncome,
		Balance:            totalIncome - currentTotal,
		RecentIncomes:      firstIncomes(incomes, recentLimit),
		Month:              month,
		Year:               year,
	}, nil
}

// breakdownByCategory groups expenses by category and sorts by total spend
// descending, breaking ties on category ID ascending so the order never
// depends on store row order.
func breakdownByCategory(expenses []models.Expense) []CategoryTotal {
	byID := make(map[uint]*CategoryTotal)
	order := make([]uint, 0)
	for _, e := range expenses {
		ct, ok := byID[e.CategoryID]
		if !ok {
			ct = &CategoryTotal{Category: e.Category}
			byID[e.CategoryID] = ct
			order = append(order, e.CategoryID)
		}
		ct.Total += e.Amount
		ct.Count++
	}

	out := make([]CategoryTotal, 0, len(byID))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category.ID < out[j].Category.ID
	})
	return out
}

// dailySeries builds the dense per-day series: exactly one entry per
// calendar day of the period, ascending, zero-filled where nothing was
// spent. Day carries the calendar day-of-month.
func dailySeries(p Period, expenses []models.Expense) []DailyAmount {
	byDay := make(map[int]float64)
	for _, e := range expenses {
		byDay[e.Date.Day()] += e.Amount
	}

	out := make([]DailyAmount, 0, p.Days())
	for d := p.Start; d.Before(p.End); d = d.AddDate(0, 0, 1) {
		out = append(out, DailyAmount{
			Day:    d.Day(),
			Amount: byDay[d.Day()],
		})
	}
	return out
}

func firstExpenses(expenses []models.Expense, n int) []models.Expense {
	if len(expenses) < n {
		n = len(expenses)
	}
	out := make([]models.Expense, n)
	copy(out, expenses[:n])
	return out
}

func firstIncomes(incomes []models.Income, n int) []models.Income {
	if len(incomes) < n {
		n = len(incomes)
	}
	out := make([]models.Income, n)
	copy(out, incomes[:n])
	return out
}
