package configs

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/RodriLang/food-ordering-API-sub001/entity"
)

// The session relations use foreign keys that GORM cannot infer from the
// struct names, so a migration run plus a preload through each of them is the
// cheapest way to catch a broken tag.
func TestSetupDatabase_MigratesSessionRelations(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := SetupDatabase(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	venue := entity.Venue{PublicID: "v-1", Name: "V", Slug: "v"}
	if err := db.Create(&venue).Error; err != nil {
		t.Fatalf("venue: %v", err)
	}
	table := entity.DiningTable{PublicID: "t-1", Number: 1, ScanCode: "c-1", VenueID: venue.ID}
	if err := db.Create(&table).Error; err != nil {
		t.Fatalf("table: %v", err)
	}
	sess := entity.TableSession{PublicID: "s-1", StartedAt: time.Now(), TableID: table.ID, VenueID: venue.ID}
	if err := db.Create(&sess).Error; err != nil {
		t.Fatalf("session: %v", err)
	}
	part := entity.SessionParticipant{PublicID: "p-1", DisplayName: "Alex", Guest: true, JoinedAt: time.Now(), SessionID: sess.ID}
	if err := db.Create(&part).Error; err != nil {
		t.Fatalf("participant: %v", err)
	}
	order := entity.Order{PublicID: "o-1", Status: entity.OrderPending, SessionID: sess.ID, VenueID: venue.ID, ParticipantID: part.ID}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("order: %v", err)
	}

	var gotSess entity.TableSession
	if err := db.Preload("Orders").Preload("Participants").First(&gotSess, sess.ID).Error; err != nil {
		t.Fatalf("preload session: %v", err)
	}
	if len(gotSess.Orders) != 1 || len(gotSess.Participants) != 1 {
		t.Fatalf("expected 1 order and 1 participant, got %d and %d",
			len(gotSess.Orders), len(gotSess.Participants))
	}

	var gotTable entity.DiningTable
	if err := db.Preload("Sessions").First(&gotTable, table.ID).Error; err != nil {
		t.Fatalf("preload table: %v", err)
	}
	if len(gotTable.Sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(gotTable.Sessions))
	}
}
