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

// ExpenseHandler exposes expense CRUD over HTTP.
type ExpenseHandler struct {
	svc *service.ExpenseService
}

func NewExpenseHandler(db *gorm.DB) *ExpenseHandler {
	return &ExpenseHandler{svc: service.NewExpenseService(db)}
}

type createExpenseReq struct {
	Amount     flexFloat `json:"amount"`
	Date       string    `json:"date"`
	CategoryID uint      `json:"categoryId"`
	Note       string    `json:"note"`
}

type updateExpenseReq struct {
	Amount     flexFloat `json:"amount"`
	Date       string    `json:"date"`
	CategoryID *uint     `json:"categoryId"`
	Note       *string   `json:"note"`
}

func (h *ExpenseHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var filter service.ExpenseFilter
	filter.Month, _ = strconv.Atoi(c.Query("month"))
	filter.Year, _ = strconv.Atoi(c.Query("year"))
	if catID, err := strconv.Atoi(c.Query("categoryId")); err == nil && catID > 0 {
		filter.CategoryID = uint(catID)
	}

	expenses, err := h.svc.List(user.ID, filter)
	if err != nil {
		writeServiceError(c, "list expenses", err)
		return
	}

	util.Success(c, util.Response{
		"expenses": expenses,
	})
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	if !req.Amount.set || req.Date == "" || req.CategoryID == 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "amount, date, and category are required")
		return
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid date format")
		return
	}

	expense, err := h.svc.Create(user.ID, service.ExpenseInput{
		Amount:     req.Amount.val,
		Date:       date,
		CategoryID: req.CategoryID,
		Note:       req.Note,
	})
	if err != nil {
		writeServiceError(c, "create expense", err)
		return
	}

	util.Created(c, util.Response{
		"expense": expense,
	})
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateExpenseReq
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

	expense, err := h.svc.Update(user.ID, id, service.ExpenseUpdate{
		Amount:     req.Amount.ptr(),
		Date:       datePtr,
		CategoryID: req.CategoryID,
		Note:       req.Note,
	})
	if err != nil {
		writeServiceError(c, "update expense", err)
		return
	}

	util.Success(c, util.Response{
		"expense": expense,
	})
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(user.ID, id); err != nil {
		writeServiceError(c, "delete expense", err)
		return
	}

	util.Success(c, util.Response{
		"message": "expense deleted successfully",
	})
}
