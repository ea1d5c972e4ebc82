package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tableside/entity"
	"tableside/pkg/resp"
	"tableside/services"
	"tableside/utils"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

// GET /admin/restaurants/:id/orders?status=&page=&limit=
func (oc *OrderController) ListForRestaurant(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var status *entity.OrderStatus
	if v := c.Query("status"); v != "" {
		s := entity.OrderStatus(v)
		status = &s
	}

	out, err := oc.Service.ListForRestaurant(utils.CurrentUserID(c), utils.CurrentRole(c), uint(restID), status, page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /admin/restaurants/:id/orders/:oid
func (oc *OrderController) Detail(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))
	orderID, _ := strconv.Atoi(c.Param("oid"))
	o, err := oc.Service.DetailForRestaurant(utils.CurrentUserID(c), utils.CurrentRole(c), uint(restID), uint(orderID))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, o)
}

type AdvanceItemReq struct {
	Status entity.OrderItemStatus `json:"status" binding:"required"`
}

// PATCH /admin/order-items/:id/status
//
// The requested status must be a legal next step from the item's persisted
// status; the server re-validates regardless of what the console showed.
func (oc *OrderController) AdvanceItemStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req AdvanceItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := oc.Service.AdvanceItemStatusOwned(utils.CurrentUserID(c), utils.CurrentRole(c), uint(id), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}
