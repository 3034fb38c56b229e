package services

import (
	"time"

	"github.com/RodriLang/food-ordering-API-sub001/entity"

	"gorm.io/gorm"
)

// Legal edges of the order state machine. CANCELLED is reachable from every
// non-terminal state; SERVED and CANCELLED are terminal.
var orderEdges = map[entity.OrderStatus][]entity.OrderStatus{
	entity.OrderPending:    {entity.OrderApproved, entity.OrderCancelled},
	entity.OrderApproved:   {entity.OrderInProgress, entity.OrderCancelled},
	entity.OrderInProgress: {entity.OrderCompleted, entity.OrderCancelled},
	entity.OrderCompleted:  {entity.OrderServed, entity.OrderCancelled},
}

// CanTransition reports whether from → to is a legal edge.
func CanTransition(from, to entity.OrderStatus) bool {
	if from.Terminal() {
		return false
	}
	for _, next := range orderEdges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanModify reports whether line items may still change: PENDING always,
// APPROVED only while the payment (if any) has not settled.
func CanModify(status entity.OrderStatus, payment *entity.Payment) bool {
	switch status {
	case entity.OrderPending:
		return true
	case entity.OrderApproved:
		return payment == nil || !payment.Status.Terminal()
	default:
		return false
	}
}

// Transition moves the order along a legal edge, stamping the update time
// explicitly. Entering CANCELLED releases the stock of every live line item and
// entering SERVED drains their reservations, both in the same transaction. The
// status flip is guarded on the expected current
// status, so a concurrent transition loses cleanly with ErrInvalidTransition.
func (s *OrderService) Transition(venueID uint, orderID string, to entity.OrderStatus) (*OrderRes, error) {
	order, err := s.Repo.FindByPublicID(venueID, orderID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if !CanTransition(order.Status, to) {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, order.ID, order.Status, to, now)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		switch to {
		case entity.OrderCancelled:
			return s.releaseAll(tx, order.ID)
		case entity.OrderServed:
			return s.consumeAll(tx, order.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	order.Status = to
	order.UpdatedAt = now

	res := &OrderRes{ID: order.PublicID, Status: to, Total: order.Total}
	s.publishTransition(order, to, res)
	return res, nil
}

// releaseAll returns the reserved stock of every live line item, once each.
func (s *OrderService) releaseAll(tx *gorm.DB, orderDBID uint) error {
	details, err := s.Repo.LiveDetails(tx, orderDBID)
	if err != nil {
		return err
	}
	for _, d := range details {
		if _, err := s.Stock.Release(tx, d.ProductID, d.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// consumeAll drains the reservations of every live line item once the order is
// served, so a later release cannot credit back stock that left the kitchen.
func (s *OrderService) consumeAll(tx *gorm.DB, orderDBID uint) error {
	details, err := s.Repo.LiveDetails(tx, orderDBID)
	if err != nil {
		return err
	}
	for _, d := range details {
		if err := s.Stock.Consume(tx, d.ProductID, d.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (s *OrderService) publishTransition(order *entity.Order, to entity.OrderStatus, res *OrderRes) {
	var event string
	switch to {
	case entity.OrderApproved:
		event = EventOrderConfirmed
	case entity.OrderServed:
		event = EventOrderServed
	case entity.OrderCancelled:
		event = EventOrderCancelled
	default:
		return // kitchen-side states have no client event
	}
	sess, err := s.Sessions.FindByID(order.SessionID)
	if err != nil {
		return
	}
	s.Events.Publish(sess.PublicID, event, res)
}

// ----- Staff actions -----

func (s *OrderService) Approve(venueID uint, orderID string) (*OrderRes, error) {
	return s.Transition(venueID, orderID, entity.OrderApproved)
}

func (s *OrderService) Start(venueID uint, orderID string) (*OrderRes, error) {
	return s.Transition(venueID, orderID, entity.OrderInProgress)
}

func (s *OrderService) Complete(venueID uint, orderID string) (*OrderRes, error) {
	return s.Transition(venueID, orderID, entity.OrderCompleted)
}

func (s *OrderService) Serve(venueID uint, orderID string) (*OrderRes, error) {
	return s.Transition(venueID, orderID, entity.OrderServed)
}

func (s *OrderService) Cancel(venueID uint, orderID string) (*OrderRes, error) {
	return s.Transition(venueID, orderID, entity.OrderCancelled)
}
