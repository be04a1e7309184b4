package migrations

import (
	"time"

	"gorm.io/gorm"
)

type memberEquipmentV1 struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement;index:ix_member_equipment_id"`
	BandMemberID uint64 `gorm:"not null;index:ix_member_equipment_band_member_id"`
	Name         string `gorm:"size:255;not null"`
	Category     string `gorm:"size:100"`
	Description  string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	BandMember   bandMemberRef `gorm:"foreignKey:BandMemberID;constraint:OnDelete:CASCADE"`
}

func (memberEquipmentV1) TableName() string { return "member_equipment" }

// addMemberEquipment creates the member_equipment table with its two
// secondary indexes. The rollback removes exactly those indexes and the
// table, nothing else.
func addMemberEquipment() *Revision {
	return &Revision{
		ID:      "a5b6c7d8e9f0",
		Parents: []string{"9f1c2b3a4d5e"},
		Migrate: func(tx *gorm.DB) error {
			if tx.Migrator().HasTable(&memberEquipmentV1{}) {
				return nil
			}
			return tx.AutoMigrate(&memberEquipmentV1{})
		},
		Rollback: func(tx *gorm.DB) error {
			m := tx.Migrator()
			if !m.HasTable(&memberEquipmentV1{}) {
				return nil
			}
			for _, idx := range []string{"ix_member_equipment_id", "ix_member_equipment_band_member_id"} {
				if !m.HasIndex(&memberEquipmentV1{}, idx) {
					continue
				}
				if err := m.DropIndex(&memberEquipmentV1{}, idx); err != nil {
					return err
				}
			}
			return m.DropTable(&memberEquipmentV1{})
		},
	}
}
