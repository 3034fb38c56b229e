package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	PublicID     string `gorm:"size:36;uniqueIndex" json:"publicId"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	FirstName    string `gorm:"size:100" json:"firstName"`
	LastName     string `gorm:"size:100" json:"lastName"`
	Role         string `gorm:"size:20;default:customer" json:"role"` // customer | staff | owner | admin
}
