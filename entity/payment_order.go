package entity

import (
	"gorm.io/gorm"
)

// PaymentOrder links one payment to each order it covers.
type PaymentOrder struct {
	gorm.Model
	PaymentID uint    `gorm:"index" json:"paymentId"`
	Payment   Payment `json:"-"`

	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	// order total at settlement time
	Amount int64 `json:"amount"`
}
