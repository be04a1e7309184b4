package models

import "time"

// Band represents a performing act
type Band struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"uniqueIndex;size:255;not null"`
	Genre        string `gorm:"size:100"`
	HomeCity     string `gorm:"size:255"`
	ContactEmail string `gorm:"size:255"`
	Bio          string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Members      []BandMember `gorm:"foreignKey:BandID"`
}

// BandMember represents a musician belonging to a band
type BandMember struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	BandID     uint64 `gorm:"not null;index:ix_band_members_band_id"`
	Name       string `gorm:"size:255;not null"`
	Instrument string `gorm:"size:100"`
	Email      string `gorm:"size:255"`
	Phone      string `gorm:"size:32"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Band       Band `gorm:"foreignKey:BandID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name for Band
func (Band) TableName() string {
	return "bands"
}

// TableName overrides the table name for BandMember
func (BandMember) TableName() string {
	return "band_members"
}
