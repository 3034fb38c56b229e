package repository

import (
	"github.com/RodriLang/food-ordering-API-sub001/entity"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *PaymentRepository) LinkOrder(tx *gorm.DB, link *entity.PaymentOrder) error {
	return tx.Create(link).Error
}

func (r *PaymentRepository) FindByID(id uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) FindByPublicID(venueID uint, publicID string) (*entity.Payment, error) {
	var p entity.Payment
	err := r.DB.Where("venue_id = ? AND public_id = ?", venueID, publicID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CoveredOrderIDs lists the orders a payment settles, in link order.
func (r *PaymentRepository) CoveredOrderIDs(tx *gorm.DB, paymentID uint) ([]uint, error) {
	var ids []uint
	err := tx.Model(&entity.PaymentOrder{}).
		Where("payment_id = ?", paymentID).
		Order("id").
		Pluck("order_id", &ids).Error
	return ids, err
}
