package migrations

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type savedTourV1 struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	BandID     uint64    `gorm:"not null;index:ix_saved_tours_band_id"`
	Name       string    `gorm:"size:255;not null"`
	StartDate  time.Time `gorm:"type:date;not null"`
	EndDate    time.Time `gorm:"type:date;not null"`
	TourData   datatypes.JSON
	TourParams datatypes.JSON
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Band       bandRef `gorm:"foreignKey:BandID;constraint:OnDelete:CASCADE"`
}

func (savedTourV1) TableName() string { return "saved_tours" }

type venueFavoriteV1 struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	BandID    uint64    `gorm:"not null;uniqueIndex:uq_venue_favorites_band_venue"`
	VenueID   uint64    `gorm:"not null;uniqueIndex:uq_venue_favorites_band_venue"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	Band      bandRef   `gorm:"foreignKey:BandID;constraint:OnDelete:CASCADE"`
	Venue     venueRef  `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
}

func (venueFavoriteV1) TableName() string { return "venue_favorites" }

// addSavedTours stores routed tours and venue bookmarks. This revision and
// addStagePlots were developed on parallel branches off c9d0e1f2a3b4 and are
// joined later by the merge revision.
func addSavedTours() *Revision {
	return &Revision{
		ID:      "d1e2f3a4b5c6",
		Parents: []string{"c9d0e1f2a3b4"},
		Migrate: func(tx *gorm.DB) error {
			if !tx.Migrator().HasTable(&savedTourV1{}) {
				if err := tx.AutoMigrate(&savedTourV1{}); err != nil {
					return err
				}
			}
			if !tx.Migrator().HasTable(&venueFavoriteV1{}) {
				if err := tx.AutoMigrate(&venueFavoriteV1{}); err != nil {
					return err
				}
			}
			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			m := tx.Migrator()
			if m.HasTable(&venueFavoriteV1{}) {
				if err := m.DropTable(&venueFavoriteV1{}); err != nil {
					return err
				}
			}
			if m.HasTable(&savedTourV1{}) {
				if err := m.DropTable(&savedTourV1{}); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
