package models

import "time"

// Venue represents a performance space
type Venue struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"size:255;not null"`
	City         string `gorm:"size:255;not null;index:ix_venues_city"`
	State        string `gorm:"size:64"`
	Address      string `gorm:"size:255"`
	Capacity     int    `gorm:"not null;default:0"`
	ContactEmail string `gorm:"size:255"`
	Website      string `gorm:"size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// VenueEquipment represents house gear available at a venue
type VenueEquipment struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	VenueID   uint64 `gorm:"not null;index:ix_venue_equipment_venue_id"`
	Name      string `gorm:"size:255;not null"`
	Category  string `gorm:"size:100"`
	Quantity  int    `gorm:"not null;default:1"`
	Notes     string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Venue     Venue `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
}

// VenueFavorite bookmarks a venue for a band
type VenueFavorite struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	BandID    uint64    `gorm:"not null;uniqueIndex:uq_venue_favorites_band_venue"`
	VenueID   uint64    `gorm:"not null;uniqueIndex:uq_venue_favorites_band_venue"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	Band      Band      `gorm:"foreignKey:BandID;constraint:OnDelete:CASCADE"`
	Venue     Venue     `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name for Venue
func (Venue) TableName() string {
	return "venues"
}

// TableName overrides the table name for VenueEquipment
func (VenueEquipment) TableName() string {
	return "venue_equipment"
}

// TableName overrides the table name for VenueFavorite
func (VenueFavorite) TableName() string {
	return "venue_favorites"
}
