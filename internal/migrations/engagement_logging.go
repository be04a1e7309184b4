package migrations

import (
	"time"

	"gorm.io/gorm"
)

type gigViewV1 struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	EventID       uint64    `gorm:"not null;index:ix_gig_views_event_id"`
	ViewerSession string    `gorm:"type:char(36)"`
	Referrer      string    `gorm:"size:512"`
	ViewedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	Event         eventRef  `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

func (gigViewV1) TableName() string { return "gig_views" }

type gigEngagementV1 struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	EventID      uint64    `gorm:"not null;index:ix_gig_engagements_event_id"`
	BandMemberID *uint64   `gorm:"index:ix_gig_engagements_band_member_id"`
	Kind         string    `gorm:"size:32;not null"`
	OccurredAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	Event        eventRef       `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	BandMember   *bandMemberRef `gorm:"foreignKey:BandMemberID;constraint:OnDelete:SET NULL"`
}

func (gigEngagementV1) TableName() string { return "gig_engagements" }

// addEngagementLogging adds the public listing view and interaction logs.
// Engagement rows keep a NULL member link after member deletion so
// aggregate counts survive.
func addEngagementLogging() *Revision {
	return &Revision{
		ID:      "0a1b2c3d4e5f",
		Parents: []string{"f5a6b7c8d9e0"},
		Migrate: func(tx *gorm.DB) error {
			if !tx.Migrator().HasTable(&gigViewV1{}) {
				if err := tx.AutoMigrate(&gigViewV1{}); err != nil {
					return err
				}
			}
			if !tx.Migrator().HasTable(&gigEngagementV1{}) {
				if err := tx.AutoMigrate(&gigEngagementV1{}); err != nil {
					return err
				}
			}
			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			m := tx.Migrator()
			if m.HasTable(&gigEngagementV1{}) {
				if err := m.DropTable(&gigEngagementV1{}); err != nil {
					return err
				}
			}
			if m.HasTable(&gigViewV1{}) {
				if err := m.DropTable(&gigViewV1{}); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
