package migrations

import (
	"time"

	"gorm.io/gorm"
)

type bandEventV1 struct {
	ID               uint64 `gorm:"primaryKey;autoIncrement"`
	BandID           uint64 `gorm:"not null;uniqueIndex:uq_band_events_band_event"`
	EventID          uint64 `gorm:"not null;uniqueIndex:uq_band_events_band_event"`
	Status           string `gorm:"size:32;not null;default:pending"`
	LoadInTime       *time.Time
	SoundcheckTime   *time.Time
	SetTime          *time.Time
	SetLengthMinutes *int
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Band             bandRef  `gorm:"foreignKey:BandID;constraint:OnDelete:CASCADE"`
	Event            eventRef `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

func (bandEventV1) TableName() string { return "band_events" }

// addBandEvents links bands to the events they play, one row per pair.
func addBandEvents() *Revision {
	return &Revision{
		ID:      "c9d0e1f2a3b4",
		Parents: []string{"b7c8d9e0f1a2"},
		Migrate: func(tx *gorm.DB) error {
			if tx.Migrator().HasTable(&bandEventV1{}) {
				return nil
			}
			return tx.AutoMigrate(&bandEventV1{})
		},
		Rollback: func(tx *gorm.DB) error {
			if !tx.Migrator().HasTable(&bandEventV1{}) {
				return nil
			}
			return tx.Migrator().DropTable(&bandEventV1{})
		},
	}
}
