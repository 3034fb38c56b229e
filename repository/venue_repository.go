package repository

import (
	"github.com/RodriLang/food-ordering-API-sub001/entity"

	"gorm.io/gorm"
)

type VenueRepository struct {
	DB *gorm.DB
}

func NewVenueRepository(db *gorm.DB) *VenueRepository {
	return &VenueRepository{DB: db}
}

func (r *VenueRepository) Create(v *entity.Venue) error {
	return r.DB.Create(v).Error
}

func (r *VenueRepository) FindByID(id uint) (*entity.Venue, error) {
	var v entity.Venue
	if err := r.DB.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VenueRepository) FindBySlug(slug string) (*entity.Venue, error) {
	var v entity.Venue
	if err := r.DB.Where("slug = ?", slug).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VenueRepository) IsOwnedBy(venueID, userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Venue{}).
		Where("id = ? AND owner_id = ?", venueID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}
