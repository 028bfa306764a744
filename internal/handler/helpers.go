package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/darril21/expense-tracker/internal/models"
	"github.com/darril21/expense-tracker/internal/service"
	"github.com/darril21/expense-tracker/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the authenticated user placed by the auth middleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("currentUser")
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return nil, false
	}
	return user, true
}

// pathID parses the :id route parameter.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// writeServiceError maps a service error onto the HTTP error taxonomy:
// not-found-or-foreign 404, validation and conflict 400, anything else 500
// with a generic message and a server-side log line.
func writeServiceError(c *gin.Context, op string, err error) {
	var (
		ve *service.ValidationError
		ce *service.ConflictError
	)
	switch {
	case errors.Is(err, service.ErrNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "record not found")
	case errors.As(err, &ve):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, ve.Msg)
	case errors.As(err, &ce):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, ce.Msg)
	default:
		log.Printf("%s (request %s): %v", op, c.GetString("requestID"), err)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal server error")
	}
}

// flexFloat accepts an amount either as a JSON number or as a numeric
// string, the two transport shapes clients send. The zero value means the
// field was absent.
type flexFloat struct {
	val float64
	set bool
}

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	f.val = v
	f.set = true
	return nil
}

func (f flexFloat) ptr() *float64 {
	if !f.set {
		return nil
	}
	v := f.val
	return &v
}
