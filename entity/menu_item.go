package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `gorm:"not null" json:"price"` // minor units (cents)
	Available   bool   `gorm:"default:true" json:"available"`
	SortOrder   int    `gorm:"not null;default:0" json:"sortOrder"`

	RestaurantID uint       `gorm:"not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	CategoryID uint     `gorm:"not null" json:"categoryId"`
	Category   Category `json:"-"`

	// option groups; preloaded on storefront/detail endpoints
	Options []MenuItemOption `json:"options,omitempty"`

	OrderItems []OrderItem `json:"-"`
}
