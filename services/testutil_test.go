package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/RodriLang/food-ordering-API-sub001/configs"
	"github.com/RodriLang/food-ordering-API-sub001/entity"
	"github.com/RodriLang/food-ordering-API-sub001/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))
	return db
}

// fixture is a venue with one open session and one participant, ready for
// order tests.
type fixture struct {
	DB          *gorm.DB
	Venue       entity.Venue
	Table       entity.DiningTable
	Session     entity.TableSession
	Participant entity.SessionParticipant
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)

	f := &fixture{DB: db}
	f.Venue = entity.Venue{PublicID: uuid.NewString(), Name: "Test Venue", Slug: "test-venue"}
	require.NoError(t, db.Create(&f.Venue).Error)

	f.Table = entity.DiningTable{
		PublicID: uuid.NewString(), Number: 1, ScanCode: uuid.NewString(), VenueID: f.Venue.ID,
	}
	require.NoError(t, db.Create(&f.Table).Error)

	f.Session = entity.TableSession{
		PublicID: uuid.NewString(), StartedAt: time.Now(),
		TableID: f.Table.ID, VenueID: f.Venue.ID,
	}
	require.NoError(t, db.Create(&f.Session).Error)

	f.Participant = entity.SessionParticipant{
		PublicID: uuid.NewString(), DisplayName: "Alex", Guest: true,
		JoinedAt: time.Now(), SessionID: f.Session.ID,
	}
	require.NoError(t, db.Create(&f.Participant).Error)
	return f
}

func (f *fixture) product(t *testing.T, name string, price int64, stock int) entity.Product {
	t.Helper()
	cat := entity.Category{PublicID: uuid.NewString(), Name: name + " cat", VenueID: f.Venue.ID}
	require.NoError(t, f.DB.Create(&cat).Error)
	p := entity.Product{
		PublicID: uuid.NewString(), Name: name, Price: price, Stock: stock,
		Available: true, CategoryID: cat.ID, VenueID: f.Venue.ID,
	}
	require.NoError(t, f.DB.Create(&p).Error)
	return p
}

func (f *fixture) orderService() *OrderService {
	return NewOrderService(
		f.DB,
		repository.NewOrderRepository(f.DB),
		repository.NewSessionRepository(f.DB),
		repository.NewPaymentRepository(f.DB),
		repository.NewProductRepository(f.DB),
		NewStockService(repository.NewProductRepository(f.DB)),
		nil,
	)
}

func (f *fixture) paymentService() *PaymentService {
	return NewPaymentService(
		f.DB,
		repository.NewPaymentRepository(f.DB),
		repository.NewOrderRepository(f.DB),
	)
}

func (f *fixture) reloadProduct(t *testing.T, id uint) entity.Product {
	t.Helper()
	var p entity.Product
	require.NoError(t, f.DB.First(&p, id).Error)
	return p
}
