package entity

type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "NEW"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Terminal reports whether no further order transition is permitted.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

type OrderItemStatus string

const (
	ItemStatusNew       OrderItemStatus = "NEW"
	ItemStatusPreparing OrderItemStatus = "PREPARING"
	ItemStatusReady     OrderItemStatus = "READY"
	ItemStatusDelivered OrderItemStatus = "DELIVERED"
	ItemStatusCompleted OrderItemStatus = "COMPLETED"
	ItemStatusCancelled OrderItemStatus = "CANCELLED"
)

func (s OrderItemStatus) Terminal() bool {
	return s == ItemStatusCompleted || s == ItemStatusCancelled
}

type TableStatus string

const (
	TableStatusAvailable   TableStatus = "AVAILABLE"
	TableStatusOccupied    TableStatus = "OCCUPIED"
	TableStatusReserved    TableStatus = "RESERVED"
	TableStatusMaintenance TableStatus = "MAINTENANCE"
)
