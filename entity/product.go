package entity

import (
	"gorm.io/gorm"
)

// Product is an inventory-bearing catalog item. Stock never goes negative;
// Reserved tracks how much of the original stock is committed to live line
// items so releases can never inflate stock past where it started.
type Product struct {
	gorm.Model
	PublicID  string `gorm:"size:36;uniqueIndex" json:"publicId"`
	Name      string `gorm:"size:200;not null" json:"name"`
	Price     int64  `json:"price"` // minor currency units
	Stock     int    `json:"stock"`
	Reserved  int    `json:"-"`
	Available bool   `gorm:"default:true" json:"available"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload for menu listing only

	VenueID uint  `json:"venueId"`
	Venue   Venue `json:"-"`
}
