package migrations

import (
	"time"

	"gorm.io/gorm"
)

type venueEquipmentV1 struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	VenueID   uint64 `gorm:"not null;index:ix_venue_equipment_venue_id"`
	Name      string `gorm:"size:255;not null"`
	Category  string `gorm:"size:100"`
	Quantity  int    `gorm:"not null;default:1"`
	Notes     string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Venue     venueRef `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
}

func (venueEquipmentV1) TableName() string { return "venue_equipment" }

type eventEquipmentClaimV1 struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	EventID      uint64    `gorm:"not null;uniqueIndex:uq_event_equipment_claims_event_equipment"`
	EquipmentID  uint64    `gorm:"not null;uniqueIndex:uq_event_equipment_claims_event_equipment"`
	BandMemberID *uint64   `gorm:"index:ix_event_equipment_claims_band_member_id"`
	Status       string    `gorm:"size:32;not null;default:claimed"`
	ClaimedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	Event        eventRef           `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	Equipment    memberEquipmentRef `gorm:"foreignKey:EquipmentID;constraint:OnDelete:CASCADE"`
	BandMember   *bandMemberRef     `gorm:"foreignKey:BandMemberID;constraint:OnDelete:SET NULL"`
}

func (eventEquipmentClaimV1) TableName() string { return "event_equipment_claims" }

// addEquipmentClaims adds house gear per venue and per-event claims on member
// gear. A piece of equipment can be claimed at most once per event.
func addEquipmentClaims() *Revision {
	return &Revision{
		ID:      "b7c8d9e0f1a2",
		Parents: []string{"a5b6c7d8e9f0"},
		Migrate: func(tx *gorm.DB) error {
			if !tx.Migrator().HasTable(&venueEquipmentV1{}) {
				if err := tx.AutoMigrate(&venueEquipmentV1{}); err != nil {
					return err
				}
			}
			if !tx.Migrator().HasTable(&eventEquipmentClaimV1{}) {
				if err := tx.AutoMigrate(&eventEquipmentClaimV1{}); err != nil {
					return err
				}
			}
			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			m := tx.Migrator()
			if m.HasTable(&eventEquipmentClaimV1{}) {
				if err := m.DropTable(&eventEquipmentClaimV1{}); err != nil {
					return err
				}
			}
			if m.HasTable(&venueEquipmentV1{}) {
				if err := m.DropTable(&venueEquipmentV1{}); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
