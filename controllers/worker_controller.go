package controllers

import (
	"github.com/abu0717/canteen/pkg/resp"
	"github.com/abu0717/canteen/services"
	"github.com/abu0717/canteen/utils"

	"github.com/gin-gonic/gin"
)

type WorkerController struct {
	Service *services.WorkerService
}

func NewWorkerController(service *services.WorkerService) *WorkerController {
	return &WorkerController{Service: service}
}

// POST /workers (owner)
func (wc *WorkerController) Assign(c *gin.Context) {
	var req services.AssignWorkerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	w, err := wc.Service.Assign(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, w)
}

// GET /workers/cafe/:cafeId (owner)
func (wc *WorkerController) ListByCafe(c *gin.Context) {
	cafeID, ok := paramID(c, "cafeId")
	if !ok {
		return
	}
	workers, err := wc.Service.ListByCafe(utils.CurrentUserID(c), cafeID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, workers)
}

// DELETE /workers/:id (owner)
func (wc *WorkerController) Remove(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := wc.Service.Remove(utils.CurrentUserID(c), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}

// ---------------- Worker requests ----------------

// POST /worker-requests (worker applies)
func (wc *WorkerController) Apply(c *gin.Context) {
	var in services.WorkerRequestIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	req, err := wc.Service.Apply(utils.CurrentUserID(c), &in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, req)
}

// GET /worker-requests/cafe/:cafeId (owner) ?status=pending
func (wc *WorkerController) ListRequests(c *gin.Context) {
	cafeID, ok := paramID(c, "cafeId")
	if !ok {
		return
	}
	reqs, err := wc.Service.ListRequests(utils.CurrentUserID(c), cafeID, c.Query("status"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, reqs)
}

// PATCH /worker-requests/:id/approve (owner)
func (wc *WorkerController) Approve(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	req, err := wc.Service.Approve(utils.CurrentUserID(c), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, req)
}

// PATCH /worker-requests/:id/reject (owner)
func (wc *WorkerController) Reject(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	req, err := wc.Service.Reject(utils.CurrentUserID(c), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, req)
}
