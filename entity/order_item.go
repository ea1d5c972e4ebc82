package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice int64           `gorm:"not null" json:"unitPrice"` // snapshot at order time, incl. option adjustments
	LineTotal int64           `gorm:"not null" json:"lineTotal"`
	Notes     string          `json:"notes"`
	Status    OrderItemStatus `gorm:"size:20;default:NEW" json:"status"`

	OrderID uint  `gorm:"not null;index" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Choices []OrderItemChoice `json:"choices,omitempty"`
}
