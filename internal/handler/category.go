package handler

import (
	"net/http"

	"github.com/darril21/expense-tracker/internal/service"
	"github.com/darril21/expense-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CategoryHandler exposes category CRUD over HTTP.
type CategoryHandler struct {
	svc *service.CategoryService
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{svc: service.NewCategoryService(db)}
}

type createCategoryReq struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type updateCategoryReq struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
	Icon  *string `json:"icon"`
}

func (h *CategoryHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	categories, err := h.svc.List(user.ID)
	if err != nil {
		writeServiceError(c, "list categories", err)
		return
	}

	util.Success(c, util.Response{
		"categories": categories,
	})
}

func (h *CategoryHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	category, err := h.svc.Create(user.ID, service.CategoryInput{
		Name:  req.Name,
		Color: req.Color,
		Icon:  req.Icon,
	})
	if err != nil {
		writeServiceError(c, "create category", err)
		return
	}

	util.Created(c, util.Response{
		"category": category,
	})
}

func (h *CategoryHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	category, err := h.svc.Update(user.ID, id, service.CategoryUpdate{
		Name:  req.Name,
		Color: req.Color,
		Icon:  req.Icon,
	})
	if err != nil {
		writeServiceError(c, "update category", err)
		return
	}

	util.Success(c, util.Response{
		"category": category,
	})
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(user.ID, id); err != nil {
		writeServiceError(c, "delete category", err)
		return
	}

	util.Success(c, util.Response{
		"message": "category deleted successfully",
	})
}
