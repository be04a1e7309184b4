package migrations

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type stagePlotV1 struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	BandID    uint64 `gorm:"not null;index:ix_stage_plots_band_id"`
	Name      string `gorm:"size:255;not null"`
	PlotData  datatypes.JSON
	CreatedAt time.Time
	UpdatedAt time.Time
	Band      bandRef `gorm:"foreignKey:BandID;constraint:OnDelete:CASCADE"`
}

func (stagePlotV1) TableName() string { return "stage_plots" }

type youtubeCacheV1 struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	BandID       uint64 `gorm:"not null;index:ix_youtube_cache_band_id"`
	VideoID      string `gorm:"uniqueIndex:uq_youtube_cache_video_id;size:32;not null"`
	Title        string `gorm:"size:255"`
	ChannelTitle string `gorm:"size:255"`
	Payload      datatypes.JSON
	FetchedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	Band         bandRef   `gorm:"foreignKey:BandID;constraint:OnDelete:CASCADE"`
}

func (youtubeCacheV1) TableName() string { return "youtube_cache" }

// addStagePlots stores stage layout documents and the YouTube metadata cache.
// Sibling branch of addSavedTours; both share parent c9d0e1f2a3b4.
func addStagePlots() *Revision {
	return &Revision{
		ID:      "e3f4a5b6c7d8",
		Parents: []string{"c9d0e1f2a3b4"},
		Migrate: func(tx *gorm.DB) error {
			if !tx.Migrator().HasTable(&stagePlotV1{}) {
				if err := tx.AutoMigrate(&stagePlotV1{}); err != nil {
					return err
				}
			}
			if !tx.Migrator().HasTable(&youtubeCacheV1{}) {
				if err := tx.AutoMigrate(&youtubeCacheV1{}); err != nil {
					return err
				}
			}
			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			m := tx.Migrator()
			if m.HasTable(&youtubeCacheV1{}) {
				if err := m.DropTable(&youtubeCacheV1{}); err != nil {
					return err
				}
			}
			if m.HasTable(&stagePlotV1{}) {
				if err := m.DropTable(&stagePlotV1{}); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
