package entity

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentCancelled PaymentStatus = "CANCELLED"
)

// Terminal payments never change again.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentCompleted || s == PaymentCancelled
}
