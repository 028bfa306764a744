package handler

import (
	"net/http"

	"github.com/darril21/expense-tracker/internal/service"
	"github.com/darril21/expense-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SettingsHandler exposes the billing cycle setting.
type SettingsHandler struct {
	svc *service.SettingsService
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{svc: service.NewSettingsService(db)}
}

type putSettingsReq struct {
	BillingCycleStart int `json:"billingCycleStart"`
}

func (h *SettingsHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	start, err := h.svc.Get(user.ID)
	if err != nil {
		writeServiceError(c, "get settings", err)
		return
	}

	util.Success(c, util.Response{
		"billingCycleStart": start,
	})
}

func (h *SettingsHandler) Put(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req putSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	start, err := h.svc.Put(user.ID, req.BillingCycleStart)
	if err != nil {
		writeServiceError(c, "update settings", err)
		return
	}

	util.Success(c, util.Response{
		"billingCycleStart": start,
	})
}
