package entity

import (
	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	Number   int         `gorm:"not null;uniqueIndex:idx_tables_restaurant_number" json:"number"`
	Capacity int         `gorm:"default:2" json:"capacity"`
	Status   TableStatus `gorm:"size:20;default:AVAILABLE" json:"status"`

	// token embedded in the QR payload URL; regenerating it invalidates printed codes
	QRToken string `gorm:"size:64;uniqueIndex" json:"qrToken"`

	RestaurantID uint       `gorm:"not null;uniqueIndex:idx_tables_restaurant_number" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Orders []Order `json:"-"`
}
