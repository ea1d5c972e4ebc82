package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tableside/entity"
	"tableside/pkg/resp"
	"tableside/services"
)

type CategoryController struct {
	Service *services.CategoryService
}

func NewCategoryController(svc *services.CategoryService) *CategoryController {
	return &CategoryController{Service: svc}
}

func (cc *CategoryController) ListForRestaurant(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))
	cats, err := cc.Service.ListByRestaurant(uint(restID))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cats})
}

type CategoryIn struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sortOrder"`
}

func (cc *CategoryController) Create(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))

	var req CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat := entity.Category{
		Name:         req.Name,
		SortOrder:    req.SortOrder,
		RestaurantID: uint(restID),
	}
	if err := cc.Service.Create(&cat); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, cat)
}

func (cc *CategoryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	cat, err := cc.Service.Get(uint(id))
	if err != nil {
		fail(c, err)
		return
	}

	var req CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat.Name = req.Name
	cat.SortOrder = req.SortOrder

	if err := cc.Service.Update(cat); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cat)
}

func (cc *CategoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := cc.Service.Delete(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

type ReorderReq struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

// Reorder persists the drag-and-drop ordering from the admin console.
func (cc *CategoryController) Reorder(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))

	var req ReorderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := cc.Service.Reorder(uint(restID), req.IDs); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"reordered": len(req.IDs)})
}
