package services

import (
	"errors"
	"time"

	"github.com/RodriLang/food-ordering-API-sub001/entity"
	"github.com/RodriLang/food-ordering-API-sub001/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SettleScope discriminates the settlement variants. Dispatch is an explicit
// switch on this tag, not an injected strategy.
type SettleScope string

const (
	ScopeGuest      SettleScope = "GUEST"      // exactly one order
	ScopeRegistered SettleScope = "REGISTERED" // explicit set of orders
)

type SettleCommand struct {
	Scope    SettleScope          `json:"scope" binding:"required"`
	OrderIDs []string             `json:"orderIds" binding:"required,min=1"`
	Method   entity.PaymentMethod `json:"method" binding:"required"`
}

type SettleRes struct {
	PaymentID     string               `json:"paymentId"`
	Status        entity.PaymentStatus `json:"status"`
	Method        entity.PaymentMethod `json:"method"`
	TotalCaptured int64                `json:"totalCaptured"`
	CoveredOrders []string             `json:"coveredOrders"`
}

type PaymentService struct {
	DB     *gorm.DB
	Repo   *repository.PaymentRepository
	Orders *repository.OrderRepository
}

func NewPaymentService(db *gorm.DB, repo *repository.PaymentRepository, orders *repository.OrderRepository) *PaymentService {
	return &PaymentService{DB: db, Repo: repo, Orders: orders}
}

// Settle marks the command's orders paid with a single payment. Replaying a
// command whose orders are already settled returns the original result and
// never creates a second payment row.
func (s *PaymentService) Settle(venueID uint, cmd *SettleCommand) (*SettleRes, error) {
	if !cmd.Method.Valid() {
		return nil, ErrInvalidArgument
	}
	switch cmd.Scope {
	case ScopeGuest:
		if len(cmd.OrderIDs) != 1 {
			return nil, ErrInvalidArgument
		}
	case ScopeRegistered:
		if len(cmd.OrderIDs) == 0 {
			return nil, ErrInvalidArgument
		}
	default:
		return nil, ErrInvalidArgument
	}

	seen := make(map[string]bool, len(cmd.OrderIDs))
	for _, id := range cmd.OrderIDs {
		if seen[id] {
			return nil, ErrInvalidArgument
		}
		seen[id] = true
	}

	// Resolve every order up front; one miss aborts the whole settlement.
	orders := make([]*entity.Order, 0, len(cmd.OrderIDs))
	for _, id := range cmd.OrderIDs {
		o, err := s.Orders.FindByPublicID(venueID, id)
		if err != nil {
			return nil, asNotFound(err)
		}
		orders = append(orders, o)
	}

	if res, done, err := s.replay(orders); done || err != nil {
		return res, err
	}

	now := time.Now()
	var amount int64
	for _, o := range orders {
		amount += o.Total
	}

	payment := entity.Payment{
		PublicID: uuid.NewString(),
		Amount:   amount,
		Method:   cmd.Method,
		Status:   entity.PaymentCompleted,
		PaidAt:   &now,
		VenueID:  venueID,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, &payment); err != nil {
			return err
		}
		for _, o := range orders {
			// Guarded link: if another settlement claimed the order between
			// our pre-read and this write, back out the whole payment.
			n, err := s.Orders.LinkPayment(tx, o.ID, payment.ID)
			if err != nil {
				return err
			}
			if n == 0 {
				return errSettleRaced
			}
			link := entity.PaymentOrder{PaymentID: payment.ID, OrderID: o.ID, Amount: o.Total}
			if err := s.Repo.LinkOrder(tx, &link); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, errSettleRaced) {
		return s.settleRaced(orders)
	}
	if err != nil {
		return nil, err
	}

	covered := make([]string, len(orders))
	for i, o := range orders {
		covered[i] = o.PublicID
	}
	return &SettleRes{
		PaymentID:     payment.PublicID,
		Status:        payment.Status,
		Method:        payment.Method,
		TotalCaptured: payment.Amount,
		CoveredOrders: covered,
	}, nil
}

// errSettleRaced aborts a settlement transaction when a concurrent settlement
// already claimed one of the orders.
var errSettleRaced = errors.New("settlement raced")

// settleRaced re-reads the orders after losing the race and hands back the
// winner's result when it covers the whole set, so both callers observe one
// payment.
func (s *PaymentService) settleRaced(orders []*entity.Order) (*SettleRes, error) {
	fresh := make([]*entity.Order, 0, len(orders))
	for _, o := range orders {
		re, err := s.Orders.FindByID(o.ID)
		if err != nil {
			return nil, asNotFound(err)
		}
		fresh = append(fresh, re)
	}
	res, done, err := s.replay(fresh)
	if err != nil {
		return nil, err
	}
	if !done {
		return nil, ErrInvalidArgument
	}
	return res, nil
}

// replay detects the idempotent case: every order already linked to the same
// COMPLETED payment. A partial or mixed prior settlement is rejected instead of
// double-charging the unpaid remainder.
func (s *PaymentService) replay(orders []*entity.Order) (*SettleRes, bool, error) {
	var paymentID *uint
	settled := 0
	for _, o := range orders {
		if o.PaymentID == nil {
			continue
		}
		settled++
		if paymentID == nil {
			paymentID = o.PaymentID
		} else if *paymentID != *o.PaymentID {
			return nil, true, ErrInvalidArgument
		}
	}
	if settled == 0 {
		return nil, false, nil
	}
	if settled != len(orders) {
		return nil, true, ErrInvalidArgument
	}

	p, err := s.Repo.FindByID(*paymentID)
	if err != nil {
		return nil, true, asNotFound(err)
	}
	if p.Status != entity.PaymentCompleted {
		// pending payment on every order: not a replay, caller must settle it
		// through the original flow
		return nil, true, ErrInvalidArgument
	}

	covered := make([]string, len(orders))
	for i, o := range orders {
		covered[i] = o.PublicID
	}
	return &SettleRes{
		PaymentID:     p.PublicID,
		Status:        p.Status,
		Method:        p.Method,
		TotalCaptured: p.Amount,
		CoveredOrders: covered,
	}, true, nil
}

// Detail returns a settled payment with the orders it covered.
func (s *PaymentService) Detail(venueID uint, paymentID string) (*SettleRes, error) {
	p, err := s.Repo.FindByPublicID(venueID, paymentID)
	if err != nil {
		return nil, asNotFound(err)
	}
	ids, err := s.Repo.CoveredOrderIDs(s.DB, p.ID)
	if err != nil {
		return nil, err
	}
	covered := make([]string, 0, len(ids))
	for _, id := range ids {
		o, err := s.Orders.FindByID(id)
		if err != nil {
			return nil, err
		}
		covered = append(covered, o.PublicID)
	}
	return &SettleRes{
		PaymentID:     p.PublicID,
		Status:        p.Status,
		Method:        p.Method,
		TotalCaptured: p.Amount,
		CoveredOrders: covered,
	}, nil
}
