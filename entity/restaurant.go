package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `gorm:"size:255;not null" json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`

	UserID uint `json:"userId"` // owner (users.id)
	User   User `json:"-"`

	// preload only on detail endpoints
	Tables     []Table    `json:"-"`
	Categories []Category `json:"-"`
	MenuItems  []MenuItem `json:"-"`
	Orders     []Order    `json:"-"`
}
