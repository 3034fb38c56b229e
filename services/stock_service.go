package services

import (
	"errors"

	"github.com/RodriLang/food-ordering-API-sub001/repository"

	"gorm.io/gorm"
)

// StockService is the single gatekeeper for product stock. Every reserve and
// release runs on the caller's transaction against a row locked FOR UPDATE, so
// concurrent order mutations serialize per product and the stock change commits
// or rolls back together with the line item that caused it.
type StockService struct {
	Products *repository.ProductRepository
}

func NewStockService(products *repository.ProductRepository) *StockService {
	return &StockService{Products: products}
}

// Reserve debits qty from the product's stock. Fails with ErrInsufficientStock
// before any write when the stock cannot cover the request. Returns the new
// stock level.
func (s *StockService) Reserve(tx *gorm.DB, productID uint, qty int) (int, error) {
	if qty <= 0 {
		return 0, ErrInvalidArgument
	}
	p, err := s.Products.LockForUpdate(tx, productID)
	if err != nil {
		return 0, asNotFound(err)
	}
	if p.Stock < qty {
		return 0, ErrInsufficientStock
	}
	stock := p.Stock - qty
	reserved := p.Reserved + qty
	if err := s.Products.UpdateStock(tx, p.ID, stock, reserved); err != nil {
		return 0, err
	}
	return stock, nil
}

// Release credits stock back on cancellation or a quantity decrease. The credit
// is capped at the tracked reserved counter, so repeated releases can never
// inflate stock past its pre-reservation level.
func (s *StockService) Release(tx *gorm.DB, productID uint, qty int) (int, error) {
	if qty <= 0 {
		return 0, ErrInvalidArgument
	}
	p, err := s.Products.LockForUpdate(tx, productID)
	if err != nil {
		return 0, asNotFound(err)
	}
	n := qty
	if n > p.Reserved {
		n = p.Reserved
	}
	stock := p.Stock + n
	reserved := p.Reserved - n
	if err := s.Products.UpdateStock(tx, p.ID, stock, reserved); err != nil {
		return 0, err
	}
	return stock, nil
}

// Consume drains qty from the reserved counter once the goods are physically
// handed over. Stock stays untouched; after this a late Release for the same
// line finds nothing reserved and credits nothing back.
func (s *StockService) Consume(tx *gorm.DB, productID uint, qty int) error {
	if qty <= 0 {
		return ErrInvalidArgument
	}
	p, err := s.Products.LockForUpdate(tx, productID)
	if err != nil {
		return asNotFound(err)
	}
	n := qty
	if n > p.Reserved {
		n = p.Reserved
	}
	return s.Products.UpdateStock(tx, p.ID, p.Stock, p.Reserved-n)
}

// Adjust moves stock by the delta between an old and a new quantity:
// increases reserve the difference, decreases release it.
func (s *StockService) Adjust(tx *gorm.DB, productID uint, oldQty, newQty int) error {
	switch {
	case newQty > oldQty:
		_, err := s.Reserve(tx, productID, newQty-oldQty)
		return err
	case newQty < oldQty:
		_, err := s.Release(tx, productID, oldQty-newQty)
		return err
	}
	return nil
}

func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrEntityNotFound
	}
	return err
}
