package entity

import (
	"gorm.io/gorm"
)

// OrderDetail is one product-and-quantity line within an order. UnitPrice is
// snapshotted when the line is added, not live-priced. Deletion is logical
// (gorm soft delete) so the audit trail survives.
type OrderDetail struct {
	gorm.Model
	PublicID     string `gorm:"size:36;uniqueIndex" json:"publicId"`
	Quantity     int    `json:"quantity"`
	UnitPrice    int64  `json:"unitPrice"`
	Subtotal     int64  `json:"subtotal"`
	Instructions string `gorm:"size:500" json:"instructions"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"` // preload when the menu name is needed
}
