package repository

import (
	"time"

	"tableside/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderTx(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForRestaurant(restID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND restaurant_id = ?", orderID, restID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderWithItems loads an order with its lines and their recorded choices.
func (r *OrderRepository) GetOrderWithItems(orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("OrderItems", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("OrderItems.Choices").
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) UpdateOrderStatus(tx *gorm.DB, orderID uint, status entity.OrderStatus) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("status", status).Error
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) CreateOrderItemChoice(tx *gorm.DB, oic *entity.OrderItemChoice) error {
	return tx.Create(oic).Error
}

func (r *OrderRepository) GetItem(itemID uint) (*entity.OrderItem, error) {
	var oi entity.OrderItem
	if err := r.DB.First(&oi, itemID).Error; err != nil {
		return nil, err
	}
	return &oi, nil
}

func (r *OrderRepository) GetItemTx(tx *gorm.DB, itemID uint) (*entity.OrderItem, error) {
	var oi entity.OrderItem
	if err := tx.First(&oi, itemID).Error; err != nil {
		return nil, err
	}
	return &oi, nil
}

func (r *OrderRepository) GetItemsForOrder(tx *gorm.DB, orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := tx.Where("order_id = ?", orderID).Order("id").Find(&items).Error
	return items, err
}

// UpdateItemStatusGuard writes the new status only when the persisted status
// still matches the status the transition was validated against. Zero rows
// affected means the item moved underneath us.
func (r *OrderRepository) UpdateItemStatusGuard(tx *gorm.DB, itemID uint, from, to entity.OrderItemStatus) (int64, error) {
	res := tx.Model(&entity.OrderItem{}).
		Where("id = ? AND status = ?", itemID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ---------------- Listing ----------------

type OrderSummary struct {
	ID          uint               `json:"id"`
	TableID     *uint              `json:"tableId,omitempty"`
	TableNumber *int               `json:"tableNumber,omitempty"`
	Status      entity.OrderStatus `json:"status"`
	TotalAmount int64              `json:"totalAmount"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// ListForRestaurant expects page and limit already normalized by the caller.
func (r *OrderRepository) ListForRestaurant(restID uint, status *entity.OrderStatus, page, limit int) ([]OrderSummary, int64, error) {
	offset := (page - 1) * limit

	count := r.DB.Model(&entity.Order{}).Where("restaurant_id = ?", restID)
	if status != nil && *status != "" {
		count = count.Where("status = ?", *status)
	}
	var total int64
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []struct {
		ID          uint
		TableID     *uint
		Number      *int
		Status      entity.OrderStatus
		TotalAmount int64
		CreatedAt   time.Time
	}
	q := r.DB.Table("orders AS o").
		Select("o.id, o.table_id, t.number, o.status, o.total_amount, o.created_at").
		Joins("LEFT JOIN tables t ON t.id = o.table_id").
		Where("o.restaurant_id = ? AND o.deleted_at IS NULL", restID)
	if status != nil && *status != "" {
		q = q.Where("o.status = ?", *status)
	}
	if err := q.Order("o.id DESC").Limit(limit).Offset(offset).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]OrderSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, OrderSummary{
			ID:          row.ID,
			TableID:     row.TableID,
			TableNumber: row.Number,
			Status:      row.Status,
			TotalAmount: row.TotalAmount,
			CreatedAt:   row.CreatedAt,
		})
	}
	return out, total, nil
}
