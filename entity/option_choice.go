package entity

import (
	"gorm.io/gorm"
)

type OptionChoice struct {
	gorm.Model
	Name            string `gorm:"size:255;not null" json:"name"`
	PriceAdjustment int64  `gorm:"default:0" json:"priceAdjustment"` // minor units, may be negative
	Default         bool   `gorm:"default:false" json:"default"`
	Available       bool   `gorm:"default:true" json:"available"`
	SortOrder       int    `gorm:"not null;default:0" json:"sortOrder"`

	MenuItemOptionID uint           `gorm:"not null" json:"menuItemOptionId"`
	MenuItemOption   MenuItemOption `json:"-"`
}
