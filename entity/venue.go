package entity

import (
	"gorm.io/gorm"
)

// Venue is the tenant root: every catalog item, table and order belongs to one.
type Venue struct {
	gorm.Model
	PublicID string `gorm:"size:36;uniqueIndex" json:"publicId"`
	Name     string `gorm:"size:200;not null" json:"name"`
	Slug     string `gorm:"size:100;uniqueIndex" json:"slug"`

	OwnerID uint `json:"ownerId"`
	Owner   User `json:"-"` // preload only for account endpoints

	Tables     []DiningTable `json:"-"`
	Categories []Category    `json:"-"`
	Products   []Product     `json:"-"`
}
