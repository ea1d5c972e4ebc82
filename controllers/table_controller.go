package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tableside/pkg/resp"
	"tableside/services"
)

type TableController struct {
	Service *services.TableService
	BaseURL string
}

func NewTableController(svc *services.TableService, baseURL string) *TableController {
	return &TableController{Service: svc, BaseURL: baseURL}
}

func (tc *TableController) ListForRestaurant(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))
	tables, err := tc.Service.ListByRestaurant(uint(restID))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": tables})
}

type TableIn struct {
	Number   int `json:"number" binding:"required,min=1"`
	Capacity int `json:"capacity" binding:"omitempty,min=1"`
}

func (tc *TableController) Create(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))

	var req TableIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Capacity == 0 {
		req.Capacity = 2
	}

	t, err := tc.Service.Create(uint(restID), req.Number, req.Capacity)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, t)
}

func (tc *TableController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.TableUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	t, err := tc.Service.Update(uint(id), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, t)
}

func (tc *TableController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := tc.Service.Delete(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// QR returns the payload URL to encode in the printed code. Rendering the
// image itself is left to the client.
func (tc *TableController) QR(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	t, err := tc.Service.Get(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"url": tc.Service.QRPayload(tc.BaseURL, t), "token": t.QRToken})
}

func (tc *TableController) RegenerateQR(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	t, err := tc.Service.RegenerateToken(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"url": tc.Service.QRPayload(tc.BaseURL, t), "token": t.QRToken})
}
