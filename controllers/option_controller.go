package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tableside/entity"
	"tableside/pkg/resp"
	"tableside/services"
)

type OptionController struct {
	Service *services.OptionService
}

func NewOptionController(svc *services.OptionService) *OptionController {
	return &OptionController{Service: svc}
}

// ---------------- Option groups ----------------

func (oc *OptionController) ListForMenuItem(c *gin.Context) {
	itemID, _ := strconv.Atoi(c.Param("id"))
	groups, err := oc.Service.ListByMenuItem(uint(itemID))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": groups})
}

type OptionGroupIn struct {
	Name      string `json:"name" binding:"required"`
	MinSelect int    `json:"minSelect"`
	MaxSelect int    `json:"maxSelect"`
	Required  bool   `json:"required"`
	SortOrder int    `json:"sortOrder"`
}

func (oc *OptionController) CreateGroup(c *gin.Context) {
	itemID, _ := strconv.Atoi(c.Param("id"))

	var req OptionGroupIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.MaxSelect == 0 {
		req.MaxSelect = 1
	}

	g := entity.MenuItemOption{
		Name:       req.Name,
		MinSelect:  req.MinSelect,
		MaxSelect:  req.MaxSelect,
		Required:   req.Required,
		SortOrder:  req.SortOrder,
		MenuItemID: uint(itemID),
	}
	if err := oc.Service.CreateGroup(&g); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, g)
}

func (oc *OptionController) UpdateGroup(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	g, err := oc.Service.GetGroup(uint(id))
	if err != nil {
		fail(c, err)
		return
	}

	var req OptionGroupIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	g.Name = req.Name
	g.MinSelect = req.MinSelect
	g.MaxSelect = req.MaxSelect
	g.Required = req.Required
	g.SortOrder = req.SortOrder

	if err := oc.Service.UpdateGroup(g); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, g)
}

func (oc *OptionController) DeleteGroup(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := oc.Service.DeleteGroup(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// ---------------- Choices ----------------

type ChoiceIn struct {
	Name            string `json:"name" binding:"required"`
	PriceAdjustment int64  `json:"priceAdjustment"`
	Default         bool   `json:"default"`
	Available       *bool  `json:"available"`
	SortOrder       int    `json:"sortOrder"`
}

func (oc *OptionController) CreateChoice(c *gin.Context) {
	groupID, _ := strconv.Atoi(c.Param("id"))

	var req ChoiceIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ch := entity.OptionChoice{
		Name:             req.Name,
		PriceAdjustment:  req.PriceAdjustment,
		Default:          req.Default,
		Available:        true,
		SortOrder:        req.SortOrder,
		MenuItemOptionID: uint(groupID),
	}
	if req.Available != nil {
		ch.Available = *req.Available
	}
	if err := oc.Service.CreateChoice(&ch); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, ch)
}

func (oc *OptionController) UpdateChoice(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	ch, err := oc.Service.GetChoice(uint(id))
	if err != nil {
		fail(c, err)
		return
	}

	var req ChoiceIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ch.Name = req.Name
	ch.PriceAdjustment = req.PriceAdjustment
	ch.Default = req.Default
	ch.SortOrder = req.SortOrder
	if req.Available != nil {
		ch.Available = *req.Available
	}

	if err := oc.Service.UpdateChoice(ch); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, ch)
}

func (oc *OptionController) DeleteChoice(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := oc.Service.DeleteChoice(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
