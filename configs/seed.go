package configs

import (
	"github.com/RodriLang/food-ordering-API-sub001/entity"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDemo loads a demo venue with tables and a small menu so a fresh database
// is usable right away. Idempotent: skipped when the venue already exists.
func SeedDemo(db *gorm.DB) error {
	var cnt int64
	if err := db.Model(&entity.Venue{}).Where("slug = ?", "demo-bistro").Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		owner := entity.User{
			PublicID:     uuid.NewString(),
			Email:        "owner@demo-bistro.test",
			PasswordHash: string(hash),
			FirstName:    "Demo",
			LastName:     "Owner",
			Role:         "owner",
		}
		if err := tx.Create(&owner).Error; err != nil {
			return err
		}

		venue := entity.Venue{
			PublicID: uuid.NewString(),
			Name:     "Demo Bistro",
			Slug:     "demo-bistro",
			OwnerID:  owner.ID,
		}
		if err := tx.Create(&venue).Error; err != nil {
			return err
		}

		for n := 1; n <= 4; n++ {
			t := entity.DiningTable{
				PublicID: uuid.NewString(),
				Number:   n,
				ScanCode: uuid.NewString(),
				VenueID:  venue.ID,
			}
			if err := tx.Create(&t).Error; err != nil {
				return err
			}
		}

		mains := entity.Category{PublicID: uuid.NewString(), Name: "Mains", VenueID: venue.ID}
		drinks := entity.Category{PublicID: uuid.NewString(), Name: "Drinks", VenueID: venue.ID}
		for _, c := range []*entity.Category{&mains, &drinks} {
			if err := tx.Create(c).Error; err != nil {
				return err
			}
		}

		products := []entity.Product{
			{PublicID: uuid.NewString(), Name: "Burger", Price: 1200, Stock: 50, Available: true, CategoryID: mains.ID, VenueID: venue.ID},
			{PublicID: uuid.NewString(), Name: "Margherita", Price: 1500, Stock: 30, Available: true, CategoryID: mains.ID, VenueID: venue.ID},
			{PublicID: uuid.NewString(), Name: "Lemonade", Price: 400, Stock: 100, Available: true, CategoryID: drinks.ID, VenueID: venue.ID},
		}
		for i := range products {
			if err := tx.Create(&products[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
