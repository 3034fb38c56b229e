package repository

import (
	"github.com/RodriLang/food-ordering-API-sub001/entity"

	"gorm.io/gorm"
)

type OfferRepository struct {
	DB *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{DB: db}
}

func (r *OfferRepository) Create(o *entity.SpecialOffer) error {
	return r.DB.Create(o).Error
}

func (r *OfferRepository) ListForVenue(venueID uint) ([]entity.SpecialOffer, error) {
	var out []entity.SpecialOffer
	err := r.DB.Where("venue_id = ?", venueID).Order("id DESC").Find(&out).Error
	return out, err
}
