package services_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tableside/configs"
	"tableside/entity"
	"tableside/repository"
	"tableside/services"
)

var testDBCounter int64

// setupTestDB opens a fresh in-memory sqlite database and migrates the schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("connect test database: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func newOrderService(db *gorm.DB) *services.OrderService {
	return services.NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewTableRepository(db),
		repository.NewMenuRepository(db),
		repository.NewRestaurantRepository(db),
	)
}

// ----- seed helpers -----

func seedRestaurant(t *testing.T, db *gorm.DB) *entity.Restaurant {
	t.Helper()
	r := entity.Restaurant{Name: "Test Bistro"}
	if err := db.Create(&r).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	return &r
}

func seedTable(t *testing.T, db *gorm.DB, restID uint, number int) *entity.Table {
	t.Helper()
	tbl := entity.Table{
		Number:       number,
		Capacity:     4,
		Status:       entity.TableStatusAvailable,
		QRToken:      fmt.Sprintf("tok-%d-%d", restID, number),
		RestaurantID: restID,
	}
	if err := db.Create(&tbl).Error; err != nil {
		t.Fatalf("seed table: %v", err)
	}
	return &tbl
}

func seedCategory(t *testing.T, db *gorm.DB, restID uint) *entity.Category {
	t.Helper()
	c := entity.Category{Name: "Mains", RestaurantID: restID}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return &c
}

func seedMenuItem(t *testing.T, db *gorm.DB, restID, catID uint, name string, price int64) *entity.MenuItem {
	t.Helper()
	m := entity.MenuItem{
		Name:         name,
		Price:        price,
		Available:    true,
		RestaurantID: restID,
		CategoryID:   catID,
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return &m
}

func seedOptionGroup(t *testing.T, db *gorm.DB, menuItemID uint, name string) *entity.MenuItemOption {
	t.Helper()
	g := entity.MenuItemOption{Name: name, MaxSelect: 1, MenuItemID: menuItemID}
	if err := db.Create(&g).Error; err != nil {
		t.Fatalf("seed option group: %v", err)
	}
	return &g
}

func seedChoice(t *testing.T, db *gorm.DB, groupID uint, name string, adj int64) *entity.OptionChoice {
	t.Helper()
	ch := entity.OptionChoice{Name: name, PriceAdjustment: adj, Available: true, MenuItemOptionID: groupID}
	if err := db.Create(&ch).Error; err != nil {
		t.Fatalf("seed choice: %v", err)
	}
	return &ch
}

// seedOrder writes an order with items directly, one item per given status.
func seedOrder(t *testing.T, db *gorm.DB, restID uint, tableID *uint, orderStatus entity.OrderStatus, itemStatuses ...entity.OrderItemStatus) (*entity.Order, []entity.OrderItem) {
	t.Helper()
	cat := seedCategory(t, db, restID)
	o := entity.Order{
		Status:       orderStatus,
		RestaurantID: restID,
		TableID:      tableID,
	}
	if err := db.Create(&o).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	items := make([]entity.OrderItem, 0, len(itemStatuses))
	for i, st := range itemStatuses {
		m := seedMenuItem(t, db, restID, cat.ID, fmt.Sprintf("dish-%d", i), 1000)
		oi := entity.OrderItem{
			Quantity:   1,
			UnitPrice:  1000,
			LineTotal:  1000,
			Status:     st,
			OrderID:    o.ID,
			MenuItemID: m.ID,
		}
		if err := db.Create(&oi).Error; err != nil {
			t.Fatalf("seed order item: %v", err)
		}
		items = append(items, oi)
	}
	return &o, items
}
