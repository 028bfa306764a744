package handler

import (
	"strconv"
	"time"

	"github.com/darril21/expense-tracker/internal/service"
	"github.com/darril21/expense-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// StatsHandler serves the monthly summary.
type StatsHandler struct {
	svc *service.StatsService
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{svc: service.NewStatsService(db)}
}

// Monthly returns the aggregated summary for ?month=&year= (default: the
// current month). ?cycle=billing switches the period to the user's
// configured billing cycle instead of the calendar month.
func (h *StatsHandler) Monthly(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	now := time.Now()
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		month = int(now.Month())
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year <= 0 {
		year = now.Year()
	}

	cycleStart := 1
	if c.Query("cycle") == "billing" {
		cycleStart = user.BillingCycleStart
	}

	summary, err := h.svc.Monthly(user.ID, year, month, cycleStart)
	if err != nil {
		writeServiceError(c, "monthly stats", err)
		return
	}

	util.Success(c, util.Response{
		"stats": summary,
	})
}
