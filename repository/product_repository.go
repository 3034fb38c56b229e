package repository

import (
	"github.com/RodriLang/food-ordering-API-sub001/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

// ---------------- Categories ----------------

func (r *ProductRepository) CreateCategory(c *entity.Category) error {
	return r.DB.Create(c).Error
}

func (r *ProductRepository) ListCategories(venueID uint) ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Where("venue_id = ?", venueID).Order("name").Find(&out).Error
	return out, err
}

// ---------------- Products ----------------

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) FindByPublicID(venueID uint, publicID string) (*entity.Product, error) {
	var p entity.Product
	err := r.DB.Where("venue_id = ? AND public_id = ?", venueID, publicID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// LockForUpdate loads the product row under SELECT ... FOR UPDATE so concurrent
// stock mutations serialize at the database. Must run inside a transaction.
// sqlite has a single writer and rejects the FOR UPDATE syntax, so the clause
// is only added on dialects that support it.
func (r *ProductRepository) LockForUpdate(tx *gorm.DB, productID uint) (*entity.Product, error) {
	q := tx
	if tx.Dialector.Name() != "sqlite" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var p entity.Product
	if err := q.First(&p, productID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateStock writes the stock and reserved counters computed by the ledger.
func (r *ProductRepository) UpdateStock(tx *gorm.DB, productID uint, stock, reserved int) error {
	return tx.Model(&entity.Product{}).Where("id = ?", productID).
		Updates(map[string]any{"stock": stock, "reserved": reserved}).Error
}

func (r *ProductRepository) ListMenu(venueID uint) ([]entity.Product, error) {
	var out []entity.Product
	err := r.DB.Preload("Category").
		Where("venue_id = ? AND available = ?", venueID, true).
		Order("category_id, name").
		Find(&out).Error
	return out, err
}

func (r *ProductRepository) Update(venueID uint, publicID string, updates map[string]any) error {
	return r.DB.Model(&entity.Product{}).
		Where("venue_id = ? AND public_id = ?", venueID, publicID).
		Updates(updates).Error
}
