package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Status      OrderStatus `gorm:"size:20;default:NEW" json:"status"`
	TotalAmount int64       `gorm:"not null" json:"totalAmount"` // minor units
	Notes       string      `json:"notes"`                       // guest contact info lands here too

	RestaurantID uint       `gorm:"not null;index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	TableID *uint  `gorm:"index" json:"tableId,omitempty"`
	Table   *Table `json:"-"`

	UserID *uint `json:"userId,omitempty"` // nil for guest orders
	User   *User `json:"-"`

	OrderItems []OrderItem `json:"items,omitempty"`
}
