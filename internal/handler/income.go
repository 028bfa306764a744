package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/darril21/expense-tracker/internal/service"
	"github.com/darril21/expense-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// IncomeHandler exposes income CRUD over HTTP.
type IncomeHandler struct {
	svc *service.IncomeService
}

func NewIncomeHandler(db *gorm.DB) *IncomeHandler {
	return &IncomeHandler{svc: service.NewIncomeService(db)}
}

type createIncomeReq struct {
	Amount flexFloat `json:"amount"`
	Type   string    `json:"type"`
	Date   string    `json:"date"`
	Note   string    `json:"note"`
}

type updateIncomeReq struct {
	Amount flexFloat `json:"amount"`
	Type   *string   `json:"type"`
	Date   string    `json:"date"`
	Note   *string   `json:"note"`
}

// List returns the month's incomes together with their sum. Month and year
// default to the current month.
func (h *IncomeHandler) List(c *gin.Context) {
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

	incomes, total, err := h.svc.List(user.ID, year, month)
	if err != nil {
		writeServiceError(c, "list incomes", err)
		return
	}

	util.Success(c, util.Response{
		"incomes": incomes,
		"total":   total,
	})
}

func (h *IncomeHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createIncomeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	if !req.Amount.set || req.Type == "" || req.Date == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "amount, type, and date are required")
		return
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid date format")
		return
	}

	income, err := h.svc.Create(user.ID, service.IncomeInput{
		Amount: req.Amount.val,
		Type:   req.Type,
		Date:   date,
		Note:   req.Note,
	})
	if err != nil {
		writeServiceError(c, "create income", err)
		return
	}

	util.Created(c, util.Response{
		"income": income,
	})
}

func (h *IncomeHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateIncomeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	var datePtr *time.Time
	if req.Date != "" {
		date, err := util.ParseDate(req.Date)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid date format")
			return
		}
		datePtr = &date
	}

	income, err := h.svc.Update(user.ID, id, service.IncomeUpdate{
		Amount: req.Amount.ptr(),
		Type:   req.Type,
		Date:   datePtr,
		Note:   req.Note,
	})
	if err != nil {
		writeServiceError(c, "update income", err)
		return
	}

	util.Success(c, util.Response{
		"income": income,
	})
}

func (h *IncomeHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(user.ID, id); err != nil {
		writeServiceError(c, "delete income", err)
		return
	}

	util.Success(c, util.Response{
		"message": "income deleted successfully",
	})
}
