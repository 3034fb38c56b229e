package entity

type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderApproved   OrderStatus = "APPROVED"
	OrderInProgress OrderStatus = "IN_PROGRESS"
	OrderCompleted  OrderStatus = "COMPLETED"
	OrderServed     OrderStatus = "SERVED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// Terminal reports whether no further transition may leave the status.
func (s OrderStatus) Terminal() bool {
	return s == OrderServed || s == OrderCancelled
}
