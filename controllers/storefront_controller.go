package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tableside/pkg/resp"
	"tableside/services"
	"tableside/utils"
)

// StorefrontController serves the diner-facing flow behind the table QR code.
type StorefrontController struct {
	Tables *services.TableService
	Menus  *services.MenuService
	Orders *services.OrderService
	Rests  *services.RestaurantService
}

func NewStorefrontController(
	tables *services.TableService,
	menus *services.MenuService,
	orders *services.OrderService,
	rests *services.RestaurantService,
) *StorefrontController {
	return &StorefrontController{Tables: tables, Menus: menus, Orders: orders, Rests: rests}
}

// GET /t/:token — resolve a scanned code to its table and restaurant.
func (sc *StorefrontController) Resolve(c *gin.Context) {
	table, err := sc.Tables.ResolveByToken(c.Param("token"))
	if err != nil {
		fail(c, err)
		return
	}
	rest, err := sc.Rests.Get(table.RestaurantID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{
		"table":      gin.H{"id": table.ID, "number": table.Number, "capacity": table.Capacity, "status": table.Status},
		"restaurant": gin.H{"id": rest.ID, "name": rest.Name, "description": rest.Description},
	})
}

// GET /t/:token/menu
func (sc *StorefrontController) Menu(c *gin.Context) {
	table, err := sc.Tables.ResolveByToken(c.Param("token"))
	if err != nil {
		fail(c, err)
		return
	}
	menu, err := sc.Menus.StorefrontByRestaurant(table.RestaurantID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, menu)
}

type StorefrontOrderReq struct {
	Items    []services.OrderLineIn `json:"items" binding:"required,min=1"`
	Customer *services.CustomerInfo `json:"customer"`
	Notes    string                 `json:"notes"`
}

// POST /t/:token/orders — submit the cart for this table.
func (sc *StorefrontController) CreateOrder(c *gin.Context) {
	table, err := sc.Tables.ResolveByToken(c.Param("token"))
	if err != nil {
		fail(c, err)
		return
	}

	var req StorefrontOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var userID *uint
	if uid := utils.CurrentUserID(c); uid != 0 {
		userID = &uid
	}

	order, err := sc.Orders.Create(userID, &services.CreateOrderReq{
		RestaurantID: table.RestaurantID,
		TableID:      table.ID,
		Items:        req.Items,
		Customer:     req.Customer,
		Notes:        req.Notes,
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /t/:token/orders/:id — diners poll their order status; the token must
// match the order's table so one table cannot read another's bill.
func (sc *StorefrontController) OrderStatus(c *gin.Context) {
	table, err := sc.Tables.ResolveByToken(c.Param("token"))
	if err != nil {
		fail(c, err)
		return
	}

	id, _ := strconv.Atoi(c.Param("id"))
	order, err := sc.Orders.Detail(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	if order.TableID == nil || *order.TableID != table.ID {
		resp.NotFound(c, "not found")
		return
	}
	resp.OK(c, order)
}
