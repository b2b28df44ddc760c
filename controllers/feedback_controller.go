package controllers

import (
	"github.com/abu0717/canteen/pkg/resp"
	"github.com/abu0717/canteen/services"
	"github.com/abu0717/canteen/utils"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	Service *services.FeedbackService
}

func NewFeedbackController(service *services.FeedbackService) *FeedbackController {
	return &FeedbackController{Service: service}
}

// POST /feedback (student)
func (fc *FeedbackController) Create(c *gin.Context) {
	var in services.FeedbackIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	f, err := fc.Service.Create(utils.CurrentUserID(c), &in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, f)
}

// GET /feedback/cafe/:cafeId (public)
func (fc *FeedbackController) ListByCafe(c *gin.Context) {
	cafeID, ok := paramID(c, "cafeId")
	if !ok {
		return
	}
	rows, err := fc.Service.ListByCafe(cafeID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

// DELETE /feedback/:id (author or admin)
func (fc *FeedbackController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := fc.Service.Delete(utils.CurrentUserID(c), utils.CurrentRole(c), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}
