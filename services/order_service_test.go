package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tableside/entity"
	"tableside/services"
)

func TestCreateOrder_TotalsWithOptionAdjustments(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	rest := seedRestaurant(t, db)
	tbl := seedTable(t, db, rest.ID, 1)
	cat := seedCategory(t, db, rest.ID)

	curry := seedMenuItem(t, db, rest.ID, cat.ID, "green curry", 1000)
	curryOpt := seedOptionGroup(t, db, curry.ID, "Protein")
	chicken := seedChoice(t, db, curryOpt.ID, "chicken", 150)

	soup := seedMenuItem(t, db, rest.ID, cat.ID, "tom yum", 800)
	soupOpt := seedOptionGroup(t, db, soup.ID, "Size")
	large := seedChoice(t, db, soupOpt.ID, "large", 50)

	order, err := svc.Create(nil, &services.CreateOrderReq{
		RestaurantID: rest.ID,
		TableID:      tbl.ID,
		Items: []services.OrderLineIn{
			{MenuItemID: curry.ID, Quantity: 2, Choices: []services.OrderChoiceIn{
				{MenuItemOptionID: curryOpt.ID, OptionChoiceID: chicken.ID},
			}},
			{MenuItemID: soup.ID, Quantity: 3, Choices: []services.OrderChoiceIn{
				{MenuItemOptionID: soupOpt.ID, OptionChoiceID: large.ID},
			}},
		},
	})
	assert.NoError(t, err)

	// (1000+150)*2 + (800+50)*3
	assert.Equal(t, int64(4850), order.TotalAmount)
	assert.Len(t, order.OrderItems, 2)
	assert.Equal(t, int64(1150), order.OrderItems[0].UnitPrice)
	assert.Equal(t, int64(2300), order.OrderItems[0].LineTotal)
	assert.Equal(t, int64(850), order.OrderItems[1].UnitPrice)
	assert.Len(t, order.OrderItems[0].Choices, 1)
	assert.Equal(t, int64(150), order.OrderItems[0].Choices[0].PriceAdjustment)
}

// Selections that do not belong to one of the ordered item's own option
// groups are skipped, not rejected. Long-standing storefront behavior.
func TestCreateOrder_SkipsForeignOptionChoices(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	rest := seedRestaurant(t, db)
	tbl := seedTable(t, db, rest.ID, 1)
	cat := seedCategory(t, db, rest.ID)

	curry := seedMenuItem(t, db, rest.ID, cat.ID, "green curry", 1000)
	other := seedMenuItem(t, db, rest.ID, cat.ID, "spring rolls", 400)
	otherOpt := seedOptionGroup(t, db, other.ID, "Sauce")
	otherChoice := seedChoice(t, db, otherOpt.ID, "peanut", 100)

	curryOpt := seedOptionGroup(t, db, curry.ID, "Protein")
	chicken := seedChoice(t, db, curryOpt.ID, "chicken", 150)

	order, err := svc.Create(nil, &services.CreateOrderReq{
		RestaurantID: rest.ID,
		TableID:      tbl.ID,
		Items: []services.OrderLineIn{
			{MenuItemID: curry.ID, Quantity: 1, Choices: []services.OrderChoiceIn{
				// another item's group: skipped
				{MenuItemOptionID: otherOpt.ID, OptionChoiceID: otherChoice.ID},
				// right group, wrong choice id: skipped
				{MenuItemOptionID: curryOpt.ID, OptionChoiceID: otherChoice.ID},
				// valid
				{MenuItemOptionID: curryOpt.ID, OptionChoiceID: chicken.ID},
			}},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1150), order.TotalAmount)
	assert.Len(t, order.OrderItems[0].Choices, 1)
	assert.Equal(t, chicken.ID, order.OrderItems[0].Choices[0].OptionChoiceID)
}

func TestCreateOrder_ValidationFailures(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	rest := seedRestaurant(t, db)
	otherRest := seedRestaurant(t, db)
	tbl := seedTable(t, db, rest.ID, 1)
	foreignTable := seedTable(t, db, otherRest.ID, 1)
	cat := seedCategory(t, db, rest.ID)
	dish := seedMenuItem(t, db, rest.ID, cat.ID, "dish", 500)
	foreignCat := seedCategory(t, db, otherRest.ID)
	foreignDish := seedMenuItem(t, db, otherRest.ID, foreignCat.ID, "foreign", 500)

	t.Run("empty items", func(t *testing.T) {
		_, err := svc.Create(nil, &services.CreateOrderReq{
			RestaurantID: rest.ID, TableID: tbl.ID, Items: nil,
		})
		assert.ErrorIs(t, err, services.ErrEmptyOrder)
	})

	t.Run("table of another restaurant", func(t *testing.T) {
		_, err := svc.Create(nil, &services.CreateOrderReq{
			RestaurantID: rest.ID, TableID: foreignTable.ID,
			Items: []services.OrderLineIn{{MenuItemID: dish.ID, Quantity: 1}},
		})
		assert.ErrorIs(t, err, services.ErrTableNotFound)
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := svc.Create(nil, &services.CreateOrderReq{
			RestaurantID: rest.ID, TableID: tbl.ID,
			Items: []services.OrderLineIn{{MenuItemID: dish.ID, Quantity: 0}},
		})
		assert.ErrorIs(t, err, services.ErrInvalidQuantity)
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, err := svc.Create(nil, &services.CreateOrderReq{
			RestaurantID: rest.ID, TableID: tbl.ID,
			Items: []services.OrderLineIn{{MenuItemID: dish.ID, Quantity: -2}},
		})
		assert.ErrorIs(t, err, services.ErrInvalidQuantity)
	})

	t.Run("unknown menu item", func(t *testing.T) {
		_, err := svc.Create(nil, &services.CreateOrderReq{
			RestaurantID: rest.ID, TableID: tbl.ID,
			Items: []services.OrderLineIn{{MenuItemID: 9999, Quantity: 1}},
		})
		assert.ErrorIs(t, err, services.ErrMenuItemNotFound)
	})

	t.Run("menu item of another restaurant", func(t *testing.T) {
		_, err := svc.Create(nil, &services.CreateOrderReq{
			RestaurantID: rest.ID, TableID: tbl.ID,
			Items: []services.OrderLineIn{{MenuItemID: foreignDish.ID, Quantity: 1}},
		})
		assert.ErrorIs(t, err, services.ErrMenuItemNotFound)
	})

	t.Run("no partial writes on failure", func(t *testing.T) {
		var orders, items int64
		db.Model(&entity.Order{}).Count(&orders)
		db.Model(&entity.OrderItem{}).Count(&items)
		assert.Zero(t, orders)
		assert.Zero(t, items)

		var gotTable entity.Table
		db.First(&gotTable, tbl.ID)
		assert.Equal(t, entity.TableStatusAvailable, gotTable.Status)
	})
}

func TestCreateOrder_SnapshotsUnitPrice(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	rest := seedRestaurant(t, db)
	tbl := seedTable(t, db, rest.ID, 1)
	cat := seedCategory(t, db, rest.ID)
	dish := seedMenuItem(t, db, rest.ID, cat.ID, "dish", 500)

	order, err := svc.Create(nil, &services.CreateOrderReq{
		RestaurantID: rest.ID, TableID: tbl.ID,
		Items: []services.OrderLineIn{{MenuItemID: dish.ID, Quantity: 1}},
	})
	assert.NoError(t, err)

	// a later price edit must not touch the existing order
	db.Model(&entity.MenuItem{}).Where("id = ?", dish.ID).Update("price", 9900)

	var got entity.OrderItem
	db.First(&got, order.OrderItems[0].ID)
	assert.Equal(t, int64(500), got.UnitPrice)

	var gotOrder entity.Order
	db.First(&gotOrder, order.ID)
	assert.Equal(t, int64(500), gotOrder.TotalAmount)
}

func TestCreateOrder_GuestInfoLandsInNotes(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	rest := seedRestaurant(t, db)
	tbl := seedTable(t, db, rest.ID, 1)
	cat := seedCategory(t, db, rest.ID)
	dish := seedMenuItem(t, db, rest.ID, cat.ID, "dish", 500)

	order, err := svc.Create(nil, &services.CreateOrderReq{
		RestaurantID: rest.ID, TableID: tbl.ID,
		Items:    []services.OrderLineIn{{MenuItemID: dish.ID, Quantity: 1}},
		Customer: &services.CustomerInfo{Name: "Alex", Email: "alex@example.com"},
		Notes:    "no cilantro",
	})
	assert.NoError(t, err)
	assert.Nil(t, order.UserID)
	assert.Equal(t, "guest: Alex <alex@example.com> | no cilantro", order.Notes)
}

func TestListOrdersForRestaurant(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	rest := seedRestaurant(t, db)
	tbl := seedTable(t, db, rest.ID, 1)
	seedOrder(t, db, rest.ID, &tbl.ID, entity.OrderStatusNew, entity.ItemStatusNew)
	seedOrder(t, db, rest.ID, &tbl.ID, entity.OrderStatusCompleted, entity.ItemStatusCompleted)

	out, err := svc.ListForRestaurant(0, "admin", rest.ID, nil, 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), out.Total)
	assert.Len(t, out.Items, 2)

	status := entity.OrderStatusCompleted
	out, err = svc.ListForRestaurant(0, "admin", rest.ID, &status, 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	assert.Equal(t, entity.OrderStatusCompleted, out.Items[0].Status)

	// out-of-range paging is normalized and the response reports the values
	// actually used
	out, err = svc.ListForRestaurant(0, "admin", rest.ID, nil, 0, 500)
	assert.NoError(t, err)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 20, out.Limit)
	assert.Len(t, out.Items, 2)

	_, err = svc.ListForRestaurant(0, "admin", 9999, nil, 1, 20)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

// Staff only reach orders of restaurants they own; admins bypass the check.
func TestOrderAccess_ScopedToRestaurantOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	owner := entity.User{FirstName: "Owner", Email: "owner@example.com", Role: "staff"}
	other := entity.User{FirstName: "Other", Email: "other@example.com", Role: "staff"}
	if err := db.Create(&owner).Error; err != nil {
		t.Fatalf("seed owner: %v", err)
	}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed other user: %v", err)
	}

	rest := entity.Restaurant{Name: "Owned Bistro", UserID: owner.ID}
	if err := db.Create(&rest).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	tbl := seedTable(t, db, rest.ID, 1)
	order, items := seedOrder(t, db, rest.ID, &tbl.ID, entity.OrderStatusNew, entity.ItemStatusNew)

	t.Run("list", func(t *testing.T) {
		out, err := svc.ListForRestaurant(owner.ID, "staff", rest.ID, nil, 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), out.Total)

		_, err = svc.ListForRestaurant(other.ID, "staff", rest.ID, nil, 1, 20)
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("detail", func(t *testing.T) {
		got, err := svc.DetailForRestaurant(owner.ID, "staff", rest.ID, order.ID)
		assert.NoError(t, err)
		assert.Equal(t, order.ID, got.ID)

		_, err = svc.DetailForRestaurant(other.ID, "staff", rest.ID, order.ID)
		assert.ErrorIs(t, err, services.ErrForbidden)

		got, err = svc.DetailForRestaurant(0, "admin", rest.ID, order.ID)
		assert.NoError(t, err)
		assert.Equal(t, order.ID, got.ID)

		// right owner, wrong restaurant
		_, err = svc.DetailForRestaurant(owner.ID, "staff", rest.ID, 9999)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("advance item", func(t *testing.T) {
		_, err := svc.AdvanceItemStatusOwned(other.ID, "staff", items[0].ID, entity.ItemStatusPreparing)
		assert.ErrorIs(t, err, services.ErrForbidden)

		var unchanged entity.OrderItem
		db.First(&unchanged, items[0].ID)
		assert.Equal(t, entity.ItemStatusNew, unchanged.Status)

		got, err := svc.AdvanceItemStatusOwned(owner.ID, "staff", items[0].ID, entity.ItemStatusPreparing)
		assert.NoError(t, err)
		assert.Equal(t, entity.ItemStatusPreparing, got.Status)

		_, err = svc.AdvanceItemStatusOwned(owner.ID, "staff", 9999, entity.ItemStatusReady)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}
