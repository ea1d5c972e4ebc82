package entity

import (
	"gorm.io/gorm"
)

// OrderItemChoice records one selected option choice for one order line.
// Rows are immutable: they reflect the historical selection, not the
// current menu configuration.
type OrderItemChoice struct {
	gorm.Model
	OrderItemID uint      `gorm:"not null;index" json:"orderItemId"`
	OrderItem   OrderItem `json:"-"`

	MenuItemOptionID uint           `gorm:"not null" json:"menuItemOptionId"`
	MenuItemOption   MenuItemOption `json:"-"`

	OptionChoiceID uint         `gorm:"not null" json:"optionChoiceId"`
	OptionChoice   OptionChoice `json:"-"`

	PriceAdjustment int64 `json:"priceAdjustment"` // snapshot, already folded into OrderItem.UnitPrice
}
