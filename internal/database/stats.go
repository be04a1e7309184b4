package database

import (
	"gorm.io/gorm"
	"gorm.io/hints"

	"github.com/noahbolger1430/Backline-sub001/internal/models"
)

// TableCounts reports row counts for every entity table, keyed by table name.
func TableCounts(db *gorm.DB) (map[string]int64, error) {
	tables := []interface{}{
		&models.Band{},
		&models.BandMember{},
		&models.Venue{},
		&models.VenueEquipment{},
		&models.VenueFavorite{},
		&models.Event{},
		&models.BandEvent{},
		&models.TicketSale{},
		&models.Setlist{},
		&models.RehearsalAttachment{},
		&models.MemberEquipment{},
		&models.EventEquipmentClaim{},
		&models.StagePlot{},
		&models.SavedTour{},
		&models.YoutubeCache{},
		&models.GigView{},
		&models.GigEngagement{},
	}

	counts := make(map[string]int64, len(tables))
	for _, model := range tables {
		if !db.Migrator().HasTable(model) {
			continue
		}
		var n int64
		if err := db.Model(model).Count(&n).Error; err != nil {
			return nil, err
		}
		name := model.(interface{ TableName() string }).TableName()
		counts[name] = n
	}
	return counts, nil
}

// GigViewCount counts listing views for one event. gig_views is by far the
// largest table, so on MySQL the count pins the event index rather than
// letting the optimizer pick.
func GigViewCount(db *gorm.DB, eventID uint64) (int64, error) {
	query := db.Model(&models.GigView{}).Where("event_id = ?", eventID)
	if db.Dialector.Name() == "mysql" {
		query = query.Clauses(hints.UseIndex("ix_gig_views_event_id"))
	}
	var n int64
	err := query.Count(&n).Error
	return n, err
}
