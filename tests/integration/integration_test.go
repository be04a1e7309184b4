// Integration tests that run the whole migration chain against a real
// database started with testcontainers. The bootstrap SQL pre-creates a few
// tables by hand, so these tests also prove the chain runs over a partially
// provisioned schema.
//
// Requires docker and the DB_* environment variables (see .env); skipped when
// DB_IMAGE is unset.

package integration

import (
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/noahbolger1430/Backline-sub001/internal/config"
	"github.com/noahbolger1430/Backline-sub001/internal/database"
	"github.com/noahbolger1430/Backline-sub001/internal/migrations"
	"github.com/noahbolger1430/Backline-sub001/internal/models"
	"github.com/noahbolger1430/Backline-sub001/internal/services"
	"github.com/noahbolger1430/Backline-sub001/tests/helpers"
)

func TestMigrationsAgainstRealDatabase(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if os.Getenv("DB_IMAGE") == "" {
		t.Skip("DB_IMAGE not set, skipping integration test")
	}

	testContainers, err := helpers.CreateDBContainer(t)
	if err != nil {
		t.Fatalf("Failed to create test containers: %v", err)
	}
	defer testContainers.Terminate(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	cfg.DBHost = testContainers.DBHost
	cfg.DBPort = testContainers.DBPort

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect: %v\n%s", err, database.Diagnose(cfg, err))
	}
	defer database.Close(db)

	runner, err := migrations.NewRunner(db)
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}

	t.Run("upgrade over pre-created tables", func(t *testing.T) {
		// The bootstrap SQL already created bands, band_members and
		// member_equipment by hand
		if !db.Migrator().HasTable("member_equipment") {
			t.Fatal("Expected bootstrap SQL to have pre-created member_equipment")
		}

		if err := runner.Upgrade(); err != nil {
			t.Fatalf("Upgrade failed: %v", err)
		}
		applied, err := runner.Applied()
		if err != nil {
			t.Fatalf("Applied failed: %v", err)
		}
		if len(applied) != 10 {
			t.Fatalf("Expected 10 applied revisions, got %d", len(applied))
		}
	})

	t.Run("health check", func(t *testing.T) {
		result := services.HealthCheck(cfg, db, true)
		if result.Status != "healthy" {
			t.Errorf("Expected healthy, got %s (%s)", result.Status, result.ErrorMessage)
		}
		if result.Schema != "current" {
			t.Errorf("Expected schema current, got %s", result.Schema)
		}
	})

	t.Run("seed and count views", func(t *testing.T) {
		band := models.Band{Name: "Static Mirrors", Genre: "post-punk", HomeCity: "Nashville"}
		if err := db.Create(&band).Error; err != nil {
			t.Fatalf("Failed to create band: %v", err)
		}
		member := models.BandMember{BandID: band.ID, Name: "Dana", Instrument: "drums"}
		if err := db.Create(&member).Error; err != nil {
			t.Fatalf("Failed to create member: %v", err)
		}
		venue := models.Venue{Name: "The Basement", City: "Nashville", Capacity: 250}
		if err := db.Create(&venue).Error; err != nil {
			t.Fatalf("Failed to create venue: %v", err)
		}
		event := models.Event{Title: "Album release", VenueID: &venue.ID, TicketURL: "https://tickets.example/static-mirrors"}
		if err := db.Create(&event).Error; err != nil {
			t.Fatalf("Failed to create event: %v", err)
		}

		for i := 0; i < 3; i++ {
			view := models.GigView{EventID: event.ID, ViewerSession: uuid.NewString(), Referrer: "https://instagram.com"}
			if err := db.Create(&view).Error; err != nil {
				t.Fatalf("Failed to create view: %v", err)
			}
		}

		// Exercises the index-hinted path on MySQL
		n, err := database.GigViewCount(db, event.ID)
		if err != nil {
			t.Fatalf("GigViewCount failed: %v", err)
		}
		if n != 3 {
			t.Errorf("Expected 3 views, got %d", n)
		}

		gear := models.MemberEquipment{BandMemberID: member.ID, Name: "Ludwig kit", Category: "drums"}
		if err := db.Create(&gear).Error; err != nil {
			t.Fatalf("Failed to create equipment: %v", err)
		}

		// band -> member -> equipment cascade, through the hand-written
		// bootstrap FKs
		if err := db.Delete(&band).Error; err != nil {
			t.Fatalf("Failed to delete band: %v", err)
		}
		var equipment int64
		db.Model(&models.MemberEquipment{}).Count(&equipment)
		if equipment != 0 {
			t.Errorf("Expected member equipment to cascade, %d left", equipment)
		}
	})

	t.Run("downgrade and re-upgrade head revision", func(t *testing.T) {
		if err := runner.Downgrade(); err != nil {
			t.Fatalf("Downgrade failed: %v", err)
		}
		if db.Migrator().HasColumn(&models.Event{}, "TicketURL") {
			t.Error("ticket_url should be gone after downgrade")
		}
		if db.Migrator().HasIndex(&models.GigView{}, "ix_gig_views_event_viewed") {
			t.Error("ix_gig_views_event_viewed should be gone after downgrade")
		}

		if err := runner.Upgrade(); err != nil {
			t.Fatalf("Re-upgrade failed: %v", err)
		}
		if !db.Migrator().HasColumn(&models.Event{}, "TicketURL") {
			t.Error("ticket_url should be back after re-upgrade")
		}
	})
}
