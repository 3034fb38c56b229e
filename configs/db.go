package configs

import (
	"github.com/RodriLang/food-ordering-API-sub001/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func OpenDB(source string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(source), &gorm.Config{})
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Venue{},
		&entity.DiningTable{},
		&entity.TableSession{}, &entity.SessionParticipant{}, &entity.SessionMessage{},
		&entity.Category{}, &entity.Product{},
		&entity.Order{}, &entity.OrderDetail{},
		&entity.Payment{}, &entity.PaymentOrder{},
		&entity.SpecialOffer{},
	)
}
