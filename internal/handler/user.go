package handler

import (
	"github.com/darril21/expense-tracker/internal/util"

	"github.com/gin-gonic/gin"
)

// GetMe returns the current logged-in user (requires AuthMiddleware).
func GetMe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	util.Success(c, util.Response{
		"user": gin.H{
			"id":                user.ID,
			"email":             user.Email,
			"name":              user.Name,
			"billingCycleStart": user.BillingCycleStart,
			"createdAt":         user.CreatedAt,
		},
	})
}
