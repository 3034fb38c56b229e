package repository

import (
	"github.com/RodriLang/food-ordering-API-sub001/entity"

	"gorm.io/gorm"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) Create(t *entity.DiningTable) error {
	return r.DB.Create(t).Error
}

func (r *TableRepository) FindByScanCode(code string) (*entity.DiningTable, error) {
	var t entity.DiningTable
	if err := r.DB.Where("scan_code = ?", code).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) ListForVenue(venueID uint) ([]entity.DiningTable, error) {
	var out []entity.DiningTable
	err := r.DB.Where("venue_id = ?", venueID).Order("number").Find(&out).Error
	return out, err
}
