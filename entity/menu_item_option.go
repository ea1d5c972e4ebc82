package entity

import (
	"gorm.io/gorm"
)

// MenuItemOption is an option group attached to a menu item
// (e.g. "Size", "Spice level").
type MenuItemOption struct {
	gorm.Model
	Name      string `gorm:"size:255;not null" json:"name"`
	MinSelect int    `gorm:"default:0" json:"minSelect"`
	MaxSelect int    `gorm:"default:1" json:"maxSelect"`
	Required  bool   `gorm:"default:false" json:"required"`
	SortOrder int    `gorm:"not null;default:0" json:"sortOrder"`

	MenuItemID uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Choices []OptionChoice `json:"choices,omitempty"`
}
