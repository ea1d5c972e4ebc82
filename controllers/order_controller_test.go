package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tableside/configs"
	"tableside/controllers"
	"tableside/entity"
	"tableside/middlewares"
	"tableside/repository"
	"tableside/services"
	"tableside/utils"
)

const testSecret = "test-secret"

var ctrlDBCounter int64

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	n := atomic.AddInt64(&ctrlDBCounter, 1)
	dsn := fmt.Sprintf("file:ctrl_test_%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("connect test database: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	tableRepo := repository.NewTableRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	tableSvc := services.NewTableService(tableRepo, restRepo)
	menuSvc := services.NewMenuService(menuRepo, catRepo)
	restSvc := services.NewRestaurantService(restRepo)
	orderSvc := services.NewOrderService(db, orderRepo, tableRepo, menuRepo, restRepo)

	orderCtrl := controllers.NewOrderController(orderSvc)
	frontCtrl := controllers.NewStorefrontController(tableSvc, menuSvc, orderSvc, restSvc)

	r := gin.New()
	r.Use(gin.Recovery())

	tg := r.Group("/t/:token", middlewares.OptionalAuth(testSecret))
	{
		tg.POST("/orders", frontCtrl.CreateOrder)
		tg.GET("/orders/:id", frontCtrl.OrderStatus)
	}
	admin := r.Group("/admin", middlewares.AuthMiddleware(testSecret, "staff", "admin"))
	{
		admin.GET("/restaurants/:id/orders", orderCtrl.ListForRestaurant)
		admin.GET("/restaurants/:id/orders/:oid", orderCtrl.Detail)
		admin.PATCH("/order-items/:id/status", orderCtrl.AdvanceItemStatus)
	}

	return r, db
}

func jsonRequest(method, path string, body any, token string) *http.Request {
	var buf []byte
	if body != nil {
		buf, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(buf))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func tokenFor(t *testing.T, userID uint, role string) string {
	t.Helper()
	token, err := utils.GenerateToken(userID, role, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

// staffToken mints a token for user 1, the restaurant owner in these tests.
func staffToken(t *testing.T) string {
	return tokenFor(t, 1, "staff")
}

type envelope struct {
	OK    bool            `json:"ok"`
	Error string          `json:"error"`
	Data  json.RawMessage `json:"data"`
}

func TestStorefrontOrderFlow(t *testing.T) {
	router, db := setupRouter(t)

	owner := entity.User{FirstName: "Owner", Email: "owner@example.com", Role: "staff"}
	db.Create(&owner)
	rest := entity.Restaurant{Name: "Bistro", UserID: owner.ID}
	db.Create(&rest)
	tbl := entity.Table{Number: 5, Capacity: 4, Status: entity.TableStatusAvailable, QRToken: "tok-5", RestaurantID: rest.ID}
	db.Create(&tbl)
	cat := entity.Category{Name: "Mains", RestaurantID: rest.ID}
	db.Create(&cat)
	dish := entity.MenuItem{Name: "pad thai", Price: 1000, Available: true, RestaurantID: rest.ID, CategoryID: cat.ID}
	db.Create(&dish)

	var orderID uint
	var itemID uint

	t.Run("guest submits an order via table token", func(t *testing.T) {
		body := gin.H{
			"items":    []gin.H{{"menuItemId": dish.ID, "quantity": 2}},
			"customer": gin.H{"name": "Alex", "email": "alex@example.com"},
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(http.MethodPost, "/t/tok-5/orders", body, ""))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var env envelope
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.True(t, env.OK)

		var order entity.Order
		assert.NoError(t, json.Unmarshal(env.Data, &order))
		assert.Equal(t, entity.OrderStatusNew, order.Status)
		assert.Equal(t, int64(2000), order.TotalAmount)
		assert.Len(t, order.OrderItems, 1)
		orderID = order.ID
		itemID = order.OrderItems[0].ID

		var gotTable entity.Table
		db.First(&gotTable, tbl.ID)
		assert.Equal(t, entity.TableStatusOccupied, gotTable.Status)
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		body := gin.H{"items": []gin.H{{"menuItemId": dish.ID, "quantity": 1}}}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(http.MethodPost, "/t/nope/orders", body, ""))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("staff advances the item through its lifecycle", func(t *testing.T) {
		token := staffToken(t)
		path := fmt.Sprintf("/admin/order-items/%d/status", itemID)

		for _, status := range []entity.OrderItemStatus{
			entity.ItemStatusPreparing,
			entity.ItemStatusReady,
			entity.ItemStatusDelivered,
			entity.ItemStatusCompleted,
		} {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, jsonRequest(http.MethodPatch, path, gin.H{"status": status}, token))
			assert.Equal(t, http.StatusOK, rec.Code, "advance to %s", status)
		}

		var gotOrder entity.Order
		db.First(&gotOrder, orderID)
		assert.Equal(t, entity.OrderStatusCompleted, gotOrder.Status)

		var gotTable entity.Table
		db.First(&gotTable, tbl.ID)
		assert.Equal(t, entity.TableStatusAvailable, gotTable.Status)
	})

	t.Run("illegal transition returns 409", func(t *testing.T) {
		rec := httptest.NewRecorder()
		path := fmt.Sprintf("/admin/order-items/%d/status", itemID)
		router.ServeHTTP(rec, jsonRequest(http.MethodPatch, path, gin.H{"status": "PREPARING"}, staffToken(t)))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("status updates require auth", func(t *testing.T) {
		rec := httptest.NewRecorder()
		path := fmt.Sprintf("/admin/order-items/%d/status", itemID)
		router.ServeHTTP(rec, jsonRequest(http.MethodPatch, path, gin.H{"status": "PREPARING"}, ""))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("staff of another restaurant is rejected", func(t *testing.T) {
		stranger := entity.User{FirstName: "Stranger", Email: "stranger@example.com", Role: "staff"}
		db.Create(&stranger)
		token := tokenFor(t, stranger.ID, "staff")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(http.MethodGet, fmt.Sprintf("/admin/restaurants/%d/orders", rest.ID), nil, token))
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(http.MethodGet, fmt.Sprintf("/admin/restaurants/%d/orders/%d", rest.ID, orderID), nil, token))
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = httptest.NewRecorder()
		path := fmt.Sprintf("/admin/order-items/%d/status", itemID)
		router.ServeHTTP(rec, jsonRequest(http.MethodPatch, path, gin.H{"status": "COMPLETED"}, token))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("owner fetches order detail", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(http.MethodGet, fmt.Sprintf("/admin/restaurants/%d/orders/%d", rest.ID, orderID), nil, staffToken(t)))
		assert.Equal(t, http.StatusOK, rec.Code)

		var env envelope
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		var order entity.Order
		assert.NoError(t, json.Unmarshal(env.Data, &order))
		assert.Equal(t, orderID, order.ID)
		assert.Len(t, order.OrderItems, 1)
	})

	t.Run("diner polls order status with the table token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(http.MethodGet, fmt.Sprintf("/t/tok-5/orders/%d", orderID), nil, ""))
		assert.Equal(t, http.StatusOK, rec.Code)

		// a different table's token cannot read this order
		other := entity.Table{Number: 6, Status: entity.TableStatusAvailable, QRToken: "tok-6", RestaurantID: rest.ID}
		db.Create(&other)
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(http.MethodGet, fmt.Sprintf("/t/tok-6/orders/%d", orderID), nil, ""))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("staff lists restaurant orders", func(t *testing.T) {
		rec := httptest.NewRecorder()
		path := fmt.Sprintf("/admin/restaurants/%d/orders?status=COMPLETED", rest.ID)
		router.ServeHTTP(rec, jsonRequest(http.MethodGet, path, nil, staffToken(t)))
		assert.Equal(t, http.StatusOK, rec.Code)

		var env envelope
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		var out services.OrderListOut
		assert.NoError(t, json.Unmarshal(env.Data, &out))
		assert.Equal(t, int64(1), out.Total)
	})
}
