package services

import (
	"errors"
	"time"

	"github.com/RodriLang/food-ordering-API-sub001/entity"
	"github.com/RodriLang/food-ordering-API-sub001/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	Sessions *repository.SessionRepository
	Payments *repository.PaymentRepository
	Products *repository.ProductRepository
	Stock    *StockService
	Events   EventPublisher
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	sessions *repository.SessionRepository,
	payments *repository.PaymentRepository,
	products *repository.ProductRepository,
	stock *StockService,
	events EventPublisher,
) *OrderService {
	if events == nil {
		events = NopPublisher{}
	}
	return &OrderService{
		DB: db, Repo: repo, Sessions: sessions, Payments: payments,
		Products: products, Stock: stock, Events: events,
	}
}

// ----- DTOs from controllers -----

type OrderItemIn struct {
	ProductID    string `json:"productId" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required,min=1"`
	Instructions string `json:"instructions"`
}

type CreateOrderReq struct {
	SessionID           string        `json:"sessionId" binding:"required"`
	ParticipantID       string        `json:"participantId" binding:"required"`
	SpecialRequirements string        `json:"specialRequirements"`
	Items               []OrderItemIn `json:"items"`
}

type OrderRes struct {
	ID     string             `json:"id"`
	Status entity.OrderStatus `json:"status"`
	Total  int64              `json:"total"`
}

// ----- Create -----

// Create opens a PENDING order in the session, optionally seeding it with line
// items. Each seeded item reserves stock inside the same transaction; any
// failure rolls everything back.
func (s *OrderService) Create(venueID uint, req *CreateOrderReq) (*OrderRes, error) {
	sess, err := s.Sessions.FindByPublicID(req.SessionID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if sess.VenueID != venueID {
		return nil, ErrEntityNotFound
	}
	if !sess.Active() {
		return nil, ErrSessionClosed
	}
	part, err := s.Sessions.FindParticipant(sess.ID, req.ParticipantID)
	if err != nil {
		return nil, asNotFound(err)
	}

	now := time.Now()
	order := entity.Order{
		PublicID:            uuid.NewString(),
		Status:              entity.OrderPending,
		SpecialRequirements: req.SpecialRequirements,
		SessionID:           sess.ID,
		VenueID:             venueID,
		ParticipantID:       part.ID,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}
		for _, it := range req.Items {
			if _, err := s.addDetail(tx, venueID, &order, it, now); err != nil {
				return err
			}
		}
		return s.recomputeTotal(tx, &order, now)
	})
	if err != nil {
		return nil, err
	}

	s.Events.Publish(sess.PublicID, EventNewOrder, OrderRes{
		ID: order.PublicID, Status: order.Status, Total: order.Total,
	})
	return &OrderRes{ID: order.PublicID, Status: order.Status, Total: order.Total}, nil
}

// ----- Line items -----

type ItemRes struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
	Subtotal int64  `json:"subtotal"`
	Stock    int    `json:"stock"`
}

// AddItem appends a line item to a modifiable order. Price is snapshotted from
// the product at add time.
func (s *OrderService) AddItem(venueID uint, orderID string, in OrderItemIn) (*ItemRes, error) {
	order, err := s.Repo.FindByPublicID(venueID, orderID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if err := s.ensureModifiable(order); err != nil {
		return nil, err
	}

	now := time.Now()
	var out ItemRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		res, err := s.addDetail(tx, venueID, order, in, now)
		if err != nil {
			return err
		}
		out = *res
		return s.recomputeTotal(tx, order, now)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// addDetail reserves stock and persists one line item on the caller's tx.
func (s *OrderService) addDetail(tx *gorm.DB, venueID uint, order *entity.Order, in OrderItemIn, now time.Time) (*ItemRes, error) {
	if in.Quantity <= 0 {
		return nil, ErrInvalidArgument
	}
	product, err := s.Products.FindByPublicID(venueID, in.ProductID)
	if err != nil {
		return nil, asNotFound(err)
	}
	stock, err := s.Stock.Reserve(tx, product.ID, in.Quantity)
	if err != nil {
		return nil, err
	}
	d := entity.OrderDetail{
		PublicID:     uuid.NewString(),
		Quantity:     in.Quantity,
		UnitPrice:    product.Price,
		Subtotal:     product.Price * int64(in.Quantity),
		Instructions: in.Instructions,
		OrderID:      order.ID,
		ProductID:    product.ID,
	}
	if err := s.Repo.CreateDetail(tx, &d); err != nil {
		return nil, err
	}
	return &ItemRes{ID: d.PublicID, Quantity: d.Quantity, Subtotal: d.Subtotal, Stock: stock}, nil
}

// UpdateItemQuantity resizes a line item, moving stock by the delta. The unit
// price stays the add-time snapshot.
func (s *OrderService) UpdateItemQuantity(venueID uint, orderID, itemID string, newQty int) (*ItemRes, error) {
	if newQty <= 0 {
		return nil, ErrInvalidArgument
	}
	order, err := s.Repo.FindByPublicID(venueID, orderID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if err := s.ensureModifiable(order); err != nil {
		return nil, err
	}
	d, err := s.Repo.FindDetail(order.ID, itemID)
	if err != nil {
		return nil, asNotFound(err)
	}

	now := time.Now()
	var out ItemRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Stock.Adjust(tx, d.ProductID, d.Quantity, newQty); err != nil {
			return err
		}
		subtotal := d.UnitPrice * int64(newQty)
		if err := s.Repo.UpdateDetail(tx, d.ID, map[string]any{
			"quantity": newQty,
			"subtotal": subtotal,
		}); err != nil {
			return err
		}
		out = ItemRes{ID: d.PublicID, Quantity: newQty, Subtotal: subtotal}
		return s.recomputeTotal(tx, order, now)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveItem soft-deletes a line item and releases its stock. The row stays for
// audit history.
func (s *OrderService) RemoveItem(venueID uint, orderID, itemID string) error {
	order, err := s.Repo.FindByPublicID(venueID, orderID)
	if err != nil {
		return asNotFound(err)
	}
	if err := s.ensureModifiable(order); err != nil {
		return err
	}
	d, err := s.Repo.FindDetail(order.ID, itemID)
	if err != nil {
		return asNotFound(err)
	}

	now := time.Now()
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.Stock.Release(tx, d.ProductID, d.Quantity); err != nil {
			return err
		}
		if err := s.Repo.SoftDeleteDetail(tx, d.ID); err != nil {
			return err
		}
		return s.recomputeTotal(tx, order, now)
	})
}

// recomputeTotal re-derives the order total from live line items. Runs after
// every line-item mutation so the stored total never goes stale.
func (s *OrderService) recomputeTotal(tx *gorm.DB, order *entity.Order, now time.Time) error {
	total, err := s.Repo.SumLiveSubtotals(tx, order.ID)
	if err != nil {
		return err
	}
	order.Total = total
	order.UpdatedAt = now
	return s.Repo.UpdateTotal(tx, order.ID, total, now)
}

// ----- Read -----

type OrderDetailRes struct {
	ID                  string               `json:"id"`
	Status              entity.OrderStatus   `json:"status"`
	Total               int64                `json:"total"`
	SpecialRequirements string               `json:"specialRequirements"`
	CreatedAt           time.Time            `json:"createdAt"`
	Items               []entity.OrderDetail `json:"items"`
}

func (s *OrderService) Detail(venueID uint, orderID string) (*OrderDetailRes, error) {
	order, err := s.Repo.FindByPublicID(venueID, orderID)
	if err != nil {
		return nil, asNotFound(err)
	}
	items, err := s.Repo.LiveDetails(s.DB, order.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetailRes{
		ID:                  order.PublicID,
		Status:              order.Status,
		Total:               order.Total,
		SpecialRequirements: order.SpecialRequirements,
		CreatedAt:           order.CreatedAt,
		Items:               items,
	}, nil
}

func (s *OrderService) ListForSession(venueID uint, sessionID string) ([]repository.OrderSummary, error) {
	sess, err := s.Sessions.FindByPublicID(sessionID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if sess.VenueID != venueID {
		return nil, ErrEntityNotFound
	}
	return s.Repo.ListForSession(sess.ID)
}

// ----- Modification gate -----

// ensureModifiable is the single enforcement point for line-item mutation; it
// loads the linked payment (if any) and defers to CanModify.
func (s *OrderService) ensureModifiable(order *entity.Order) error {
	var payment *entity.Payment
	if order.PaymentID != nil {
		p, err := s.Payments.FindByID(*order.PaymentID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		payment = p
	}
	if !CanModify(order.Status, payment) {
		return ErrOrderInProgress
	}
	return nil
}
