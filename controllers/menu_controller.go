package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tableside/entity"
	"tableside/pkg/resp"
	"tableside/services"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Service: svc}
}

func (mc *MenuController) ListForRestaurant(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))

	var categoryID *uint
	if v := c.Query("categoryId"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			id := uint(n)
			categoryID = &id
		}
	}

	items, err := mc.Service.ListByRestaurant(uint(restID), categoryID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

func (mc *MenuController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	item, err := mc.Service.Get(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

type MenuItemIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,min=0"`
	CategoryID  uint   `json:"categoryId" binding:"required"`
	Available   *bool  `json:"available"`
	SortOrder   int    `json:"sortOrder"`
}

func (mc *MenuController) Create(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))

	var req MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := entity.MenuItem{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Available:    true,
		SortOrder:    req.SortOrder,
		RestaurantID: uint(restID),
		CategoryID:   req.CategoryID,
	}
	if req.Available != nil {
		item.Available = *req.Available
	}
	if err := mc.Service.Create(&item); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, item)
}

func (mc *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	item, err := mc.Service.Get(uint(id))
	if err != nil {
		fail(c, err)
		return
	}

	var req MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.CategoryID = req.CategoryID
	item.SortOrder = req.SortOrder
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := mc.Service.Update(item); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

func (mc *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := mc.Service.Delete(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

func (mc *MenuController) Reorder(c *gin.Context) {
	categoryID, _ := strconv.Atoi(c.Param("id"))

	var req ReorderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := mc.Service.Reorder(uint(categoryID), req.IDs); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"reordered": len(req.IDs)})
}
