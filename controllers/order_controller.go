package controllers

import (
	"strconv"

	"github.com/abu0717/canteen/pkg/resp"
	"github.com/abu0717/canteen/services"
	"github.com/abu0717/canteen/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	detail, err := oc.Service.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, detail)
}

// GET /orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := oc.Service.ListForUser(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /orders/history
func (oc *OrderController) History(c *gin.Context) {
	items, err := oc.Service.HistoryForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /orders/:id (order owner only)
func (oc *OrderController) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	detail, err := oc.Service.DetailForUser(utils.CurrentUserID(c), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detail)
}

// GET /orders/cafe/:cafeId (staff)
func (oc *OrderController) ListForCafe(c *gin.Context) {
	cafeID, ok := paramID(c, "cafeId")
	if !ok {
		return
	}
	items, err := oc.Service.ListForCafe(utils.CurrentUserID(c), utils.CurrentRole(c), cafeID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PUT /orders/:id (staff status transition)
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.UpdateStatus(utils.CurrentUserID(c), utils.CurrentRole(c), id, req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id (customer cancel)
func (oc *OrderController) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := oc.Service.Cancel(utils.CurrentUserID(c), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}
