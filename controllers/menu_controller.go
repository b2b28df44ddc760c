package controllers

import (
	"github.com/abu0717/canteen/pkg/resp"
	"github.com/abu0717/canteen/services"
	"github.com/abu0717/canteen/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{Service: service}
}

// GET /cafes/:id/menu (public)
func (mc *MenuController) ListByCafe(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	items, err := mc.Service.ListByCafe(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /cafes/:id/menu
func (mc *MenuController) Create(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := mc.Service.Create(utils.CurrentUserID(c), utils.CurrentRole(c), id, &in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /menu/:id
func (mc *MenuController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := mc.Service.Update(utils.CurrentUserID(c), utils.CurrentRole(c), id, updates)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu/:id
func (mc *MenuController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := mc.Service.Delete(utils.CurrentUserID(c), utils.CurrentRole(c), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}

// ---------------- Categories ----------------

// GET /cafes/:id/categories (public)
func (mc *MenuController) ListCategories(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	cats, err := mc.Service.ListCategories(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}

// POST /cafes/:id/categories
func (mc *MenuController) CreateCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in services.CategoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := mc.Service.CreateCategory(utils.CurrentUserID(c), utils.CurrentRole(c), id, &in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, cat)
}
