package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name      string `gorm:"size:255;not null" json:"name"`
	SortOrder int    `gorm:"not null;default:0" json:"sortOrder"`

	RestaurantID uint       `gorm:"not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	MenuItems []MenuItem `json:"-"`
}
