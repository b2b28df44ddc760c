package controllers

import (
	"strconv"

	"github.com/abu0717/canteen/pkg/resp"
	"github.com/abu0717/canteen/services"
	"github.com/abu0717/canteen/utils"

	"github.com/gin-gonic/gin"
)

type CafeController struct {
	Service *services.CafeService
}

func NewCafeController(service *services.CafeService) *CafeController {
	return &CafeController{Service: service}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// GET /cafes (public)
func (cc *CafeController) List(c *gin.Context) {
	cafes, err := cc.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cafes)
}

// GET /cafes/:id (public)
func (cc *CafeController) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	cafe, err := cc.Service.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cafe)
}

// POST /cafes (owner/admin)
func (cc *CafeController) Create(c *gin.Context) {
	var in services.CafeIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cafe, err := cc.Service.Create(utils.CurrentUserID(c), &in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, cafe)
}

// PATCH /cafes/:id
func (cc *CafeController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cafe, err := cc.Service.Update(utils.CurrentUserID(c), utils.CurrentRole(c), id, updates)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cafe)
}

// DELETE /cafes/:id
func (cc *CafeController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := cc.Service.Delete(utils.CurrentUserID(c), utils.CurrentRole(c), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}

// ---------------- Inventory ----------------

// GET /cafes/:id/inventory
func (cc *CafeController) ListInventory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	items, err := cc.Service.ListInventory(utils.CurrentUserID(c), utils.CurrentRole(c), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /cafes/:id/inventory
func (cc *CafeController) CreateInventory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in services.InventoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	inv, err := cc.Service.CreateInventory(utils.CurrentUserID(c), utils.CurrentRole(c), id, &in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, inv)
}

// PATCH /inventory/:id
func (cc *CafeController) UpdateInventory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	inv, err := cc.Service.UpdateInventory(utils.CurrentUserID(c), utils.CurrentRole(c), id, updates)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, inv)
}

// DELETE /inventory/:id
func (cc *CafeController) DeleteInventory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := cc.Service.DeleteInventory(utils.CurrentUserID(c), utils.CurrentRole(c), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}
