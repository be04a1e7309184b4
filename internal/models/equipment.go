package models

import "time"

// MemberEquipment represents gear owned by an individual band member
type MemberEquipment struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement;index:ix_member_equipment_id"`
	BandMemberID uint64 `gorm:"not null;index:ix_member_equipment_band_member_id"`
	Name         string `gorm:"size:255;not null"`
	Category     string `gorm:"size:100"`
	Description  string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	BandMember   BandMember `gorm:"foreignKey:BandMemberID;constraint:OnDelete:CASCADE"`
}

// EventEquipmentClaim reserves a piece of member gear for an event.
// A given piece of equipment can be claimed at most once per event.
type EventEquipmentClaim struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	EventID      uint64    `gorm:"not null;uniqueIndex:uq_event_equipment_claims_event_equipment"`
	EquipmentID  uint64    `gorm:"not null;uniqueIndex:uq_event_equipment_claims_event_equipment"`
	BandMemberID *uint64   `gorm:"index:ix_event_equipment_claims_band_member_id"`
	Status       string    `gorm:"size:32;not null;default:claimed"`
	ClaimedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	Event        Event           `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	Equipment    MemberEquipment `gorm:"foreignKey:EquipmentID;constraint:OnDelete:CASCADE"`
	BandMember   *BandMember     `gorm:"foreignKey:BandMemberID;constraint:OnDelete:SET NULL"`
}

// StagePlot stores a band's stage layout diagram as a JSON document
type StagePlot struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	BandID    uint64 `gorm:"not null;index:ix_stage_plots_band_id"`
	Name      string `gorm:"size:255;not null"`
	PlotData  JSON
	CreatedAt time.Time
	UpdatedAt time.Time
	Band      Band `gorm:"foreignKey:BandID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name for MemberEquipment
func (MemberEquipment) TableName() string {
	return "member_equipment"
}

// TableName overrides the table name for EventEquipmentClaim
func (EventEquipmentClaim) TableName() string {
	return "event_equipment_claims"
}

// TableName overrides the table name for StagePlot
func (StagePlot) TableName() string {
	return "stage_plots"
}
