package repository

import (
	"time"

	"github.com/RodriLang/food-ordering-API-sub001/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) FindByPublicID(venueID uint, publicID string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("venue_id = ? AND public_id = ?", venueID, publicID).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	PublicID  string             `json:"publicId"`
	Status    entity.OrderStatus `json:"status"`
	Total     int64              `json:"total"`
	CreatedAt time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListForSession(sessionID uint) ([]OrderSummary, error) {
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("public_id, status, total, created_at").
		Where("session_id = ?", sessionID).
		Order("id DESC").
		Scan(&out).Error
	return out, err
}

// UpdateStatusGuard flips the status only when the order is still in `from`,
// so two concurrent transitions cannot both win. Returns rows affected.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus, at time.Time) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(map[string]any{"status": to, "updated_at": at})
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) UpdateTotal(tx *gorm.DB, orderID uint, total int64, at time.Time) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Updates(map[string]any{"total": total, "updated_at": at}).Error
}

// LinkPayment attaches a payment to an order only while the order is still
// unsettled, so two concurrent settlements cannot both claim it. Returns rows
// affected, same contract as UpdateStatusGuard.
func (r *OrderRepository) LinkPayment(tx *gorm.DB, orderID, paymentID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND payment_id IS NULL", orderID).
		Update("payment_id", paymentID)
	return res.RowsAffected, res.Error
}

// ---------------- Line items ----------------

func (r *OrderRepository) CreateDetail(tx *gorm.DB, d *entity.OrderDetail) error {
	return tx.Create(d).Error
}

func (r *OrderRepository) FindDetail(orderID uint, publicID string) (*entity.OrderDetail, error) {
	var d entity.OrderDetail
	err := r.DB.Where("order_id = ? AND public_id = ?", orderID, publicID).First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *OrderRepository) UpdateDetail(tx *gorm.DB, detailID uint, updates map[string]any) error {
	return tx.Model(&entity.OrderDetail{}).Where("id = ?", detailID).Updates(updates).Error
}

// SoftDeleteDetail sets the gorm deleted_at flag; the row stays for audit.
func (r *OrderRepository) SoftDeleteDetail(tx *gorm.DB, detailID uint) error {
	return tx.Delete(&entity.OrderDetail{}, detailID).Error
}

// LiveDetails returns the non-deleted line items of an order.
func (r *OrderRepository) LiveDetails(tx *gorm.DB, orderID uint) ([]entity.OrderDetail, error) {
	var out []entity.OrderDetail
	err := tx.Where("order_id = ?", orderID).Find(&out).Error
	return out, err
}

// SumLiveSubtotals recomputes the derived order total from its live line items.
func (r *OrderRepository) SumLiveSubtotals(tx *gorm.DB, orderID uint) (int64, error) {
	var total *int64
	err := tx.Model(&entity.OrderDetail{}).
		Select("SUM(subtotal)").
		Where("order_id = ?", orderID).
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}
