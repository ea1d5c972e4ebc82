package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `gorm:"size:20;default:staff" json:"role"` // staff | admin

	Restaurants []Restaurant `json:"-"`
	Orders      []Order      `json:"-"`
}
