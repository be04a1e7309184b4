package models_test

import (
	"testing"
	"time"

	"github.com/noahbolger1430/Backline-sub001/internal/models"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database with all tables and
// foreign key enforcement on, so cascade behavior can be observed.
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Band{},
		&models.BandMember{},
		&models.Venue{},
		&models.Event{},
		&models.Setlist{},
		&models.TicketSale{},
		&models.RehearsalAttachment{},
		&models.MemberEquipment{},
		&models.VenueEquipment{},
		&models.EventEquipmentClaim{},
		&models.BandEvent{},
		&models.SavedTour{},
		&models.VenueFavorite{},
		&models.StagePlot{},
		&models.YoutubeCache{},
		&models.GigView{},
		&models.GigEngagement{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func TestBandNameUnique(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Create(&models.Band{Name: "Static Mirrors"}).Error; err != nil {
		t.Fatalf("Failed to create band: %v", err)
	}
	if err := db.Create(&models.Band{Name: "Static Mirrors"}).Error; err == nil {
		t.Error("Expected duplicate band name to be rejected")
	}
}

func TestBandDeleteCascades(t *testing.T) {
	db := setupTestDB(t)

	band := models.Band{Name: "Static Mirrors"}
	if err := db.Create(&band).Error; err != nil {
		t.Fatalf("Failed to create band: %v", err)
	}
	member := models.BandMember{BandID: band.ID, Name: "Dana", Instrument: "drums"}
	if err := db.Create(&member).Error; err != nil {
		t.Fatalf("Failed to create member: %v", err)
	}
	gear := models.MemberEquipment{BandMemberID: member.ID, Name: "Ludwig kit", Category: "drums"}
	if err := db.Create(&gear).Error; err != nil {
		t.Fatalf("Failed to create equipment: %v", err)
	}

	if err := db.Delete(&band).Error; err != nil {
		t.Fatalf("Failed to delete band: %v", err)
	}

	var members, equipment int64
	db.Model(&models.BandMember{}).Count(&members)
	db.Model(&models.MemberEquipment{}).Count(&equipment)
	if members != 0 {
		t.Errorf("Expected members to cascade, %d left", members)
	}
	if equipment != 0 {
		t.Errorf("Expected member equipment to cascade, %d left", equipment)
	}
}

func TestEngagementSurvivesMemberDeletion(t *testing.T) {
	db := setupTestDB(t)

	band := models.Band{Name: "Static Mirrors"}
	if err := db.Create(&band).Error; err != nil {
		t.Fatalf("Failed to create band: %v", err)
	}
	member := models.BandMember{BandID: band.ID, Name: "Dana"}
	if err := db.Create(&member).Error; err != nil {
		t.Fatalf("Failed to create member: %v", err)
	}
	event := models.Event{Title: "Album release", EventDate: time.Now()}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("Failed to create event: %v", err)
	}
	engagement := models.GigEngagement{EventID: event.ID, BandMemberID: &member.ID, Kind: "share"}
	if err := db.Create(&engagement).Error; err != nil {
		t.Fatalf("Failed to create engagement: %v", err)
	}

	if err := db.Delete(&member).Error; err != nil {
		t.Fatalf("Failed to delete member: %v", err)
	}

	var got models.GigEngagement
	if err := db.First(&got, engagement.ID).Error; err != nil {
		t.Fatalf("Engagement should survive member deletion: %v", err)
	}
	if got.BandMemberID != nil {
		t.Errorf("Expected band_member_id to be NULL, got %v", *got.BandMemberID)
	}
}

func TestBandPlaysEventOnce(t *testing.T) {
	db := setupTestDB(t)

	band := models.Band{Name: "Static Mirrors"}
	if err := db.Create(&band).Error; err != nil {
		t.Fatalf("Failed to create band: %v", err)
	}
	event := models.Event{Title: "Album release", EventDate: time.Now()}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("Failed to create event: %v", err)
	}

	if err := db.Create(&models.BandEvent{BandID: band.ID, EventID: event.ID}).Error; err != nil {
		t.Fatalf("Failed to create band event: %v", err)
	}
	if err := db.Create(&models.BandEvent{BandID: band.ID, EventID: event.ID}).Error; err == nil {
		t.Error("Expected duplicate band/event pair to be rejected")
	}
}

func TestVenueFavoriteUniquePerBand(t *testing.T) {
	db := setupTestDB(t)

	band := models.Band{Name: "Static Mirrors"}
	if err := db.Create(&band).Error; err != nil {
		t.Fatalf("Failed to create band: %v", err)
	}
	venue := models.Venue{Name: "The Basement", City: "Nashville"}
	if err := db.Create(&venue).Error; err != nil {
		t.Fatalf("Failed to create venue: %v", err)
	}

	if err := db.Create(&models.VenueFavorite{BandID: band.ID, VenueID: venue.ID}).Error; err != nil {
		t.Fatalf("Failed to create favorite: %v", err)
	}
	if err := db.Create(&models.VenueFavorite{BandID: band.ID, VenueID: venue.ID}).Error; err == nil {
		t.Error("Expected duplicate favorite to be rejected")
	}
}

func TestEventVenueSetNullOnVenueDeletion(t *testing.T) {
	db := setupTestDB(t)

	venue := models.Venue{Name: "The Basement", City: "Nashville"}
	if err := db.Create(&venue).Error; err != nil {
		t.Fatalf("Failed to create venue: %v", err)
	}
	event := models.Event{Title: "Album release", VenueID: &venue.ID, EventDate: time.Now()}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("Failed to create event: %v", err)
	}

	if err := db.Delete(&venue).Error; err != nil {
		t.Fatalf("Failed to delete venue: %v", err)
	}

	var got models.Event
	if err := db.First(&got, event.ID).Error; err != nil {
		t.Fatalf("Event should survive venue deletion: %v", err)
	}
	if got.VenueID != nil {
		t.Errorf("Expected venue_id to be NULL, got %v", *got.VenueID)
	}
	if got.Status != "scheduled" {
		t.Errorf("Expected default status scheduled, got %q", got.Status)
	}
}

func TestDecodeParams(t *testing.T) {
	tour := models.SavedTour{
		TourParams: models.JSON{JSON: datatypes.JSON(`{"expected_draw":"150","max_drive_minutes":240,"regions":["northeast","midwest"]}`)},
	}

	params, err := tour.DecodeParams()
	if err != nil {
		t.Fatalf("DecodeParams failed: %v", err)
	}
	if uint64(params.ExpectedDraw) != 150 {
		t.Errorf("Expected draw 150, got %d", params.ExpectedDraw)
	}
	if uint64(params.MaxDriveMinutes) != 240 {
		t.Errorf("Expected max drive 240, got %d", params.MaxDriveMinutes)
	}
	if len(params.Regions) != 2 || params.Regions[0] != "northeast" {
		t.Errorf("Unexpected regions: %v", params.Regions)
	}
}

func TestDecodeParamsEmpty(t *testing.T) {
	var tour models.SavedTour
	params, err := tour.DecodeParams()
	if err != nil {
		t.Fatalf("DecodeParams failed on empty blob: %v", err)
	}
	if uint64(params.ExpectedDraw) != 0 || params.Regions != nil {
		t.Errorf("Expected zero value, got %+v", params)
	}
}

// GORM treats equipment and cache as uncountable nouns, so these table names
// depend on the TableName overrides.
func TestTableNameOverrides(t *testing.T) {
	db := setupTestDB(t)

	for _, table := range []string{
		"member_equipment", "venue_equipment", "youtube_cache",
		"gig_views", "gig_engagements", "saved_tours",
	} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("Expected table %s to exist", table)
		}
	}
}
