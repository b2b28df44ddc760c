package controllers

import (
	"github.com/abu0717/canteen/entity"
	"github.com/abu0717/canteen/pkg/resp"
	"github.com/abu0717/canteen/repository"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Users *repository.UserRepository
	Cafes *repository.CafeRepository
	Ads   *repository.AdvertisementRepository
}

func NewAdminController(users *repository.UserRepository, cafes *repository.CafeRepository, ads *repository.AdvertisementRepository) *AdminController {
	return &AdminController{Users: users, Cafes: cafes, Ads: ads}
}

// GET /admin/users
func (ac *AdminController) ListUsers(c *gin.Context) {
	users, err := ac.Users.List(0)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, users)
}

// GET /admin/cafes
func (ac *AdminController) ListCafes(c *gin.Context) {
	cafes, err := ac.Cafes.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cafes)
}

type adIn struct {
	Title  string `json:"title" binding:"required"`
	Image  string `json:"image"`
	Active *bool  `json:"active"`
}

// POST /admin/advertisements
func (ac *AdminController) CreateAd(c *gin.Context) {
	var in adIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	ad := &entity.Advertisement{Title: in.Title, Image: in.Image, Active: active}
	if err := ac.Ads.Create(ad); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, ad)
}

// DELETE /admin/advertisements/:id
func (ac *AdminController) DeleteAd(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ac.Ads.Delete(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}

// GET /advertisements (public)
func (ac *AdminController) ListActiveAds(c *gin.Context) {
	ads, err := ac.Ads.ListActive()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, ads)
}
