package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tableside/entity"
	"tableside/pkg/resp"
	"tableside/services"
	"tableside/utils"
)

type RestaurantController struct {
	Service *services.RestaurantService
}

func NewRestaurantController(svc *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Service: svc}
}

func (rc *RestaurantController) List(c *gin.Context) {
	items, err := rc.Service.List()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

func (rc *RestaurantController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	r, err := rc.Service.Get(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, r)
}

type RestaurantIn struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

func (rc *RestaurantController) Create(c *gin.Context) {
	var req RestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	r := entity.Restaurant{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		UserID:      utils.CurrentUserID(c),
	}
	if err := rc.Service.Create(&r); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, r)
}

func (rc *RestaurantController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	r, err := rc.Service.Get(uint(id))
	if err != nil {
		fail(c, err)
		return
	}

	var req RestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	r.Name = req.Name
	r.Address = req.Address
	r.Description = req.Description

	if err := rc.Service.Update(r); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, r)
}

func (rc *RestaurantController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := rc.Service.Delete(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
