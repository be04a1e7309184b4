package models

import "time"

// Setlist represents an ordered song list a band performs
type Setlist struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	BandID    uint64 `gorm:"not null;index:ix_setlists_band_id"`
	Name      string `gorm:"size:255;not null"`
	Songs     JSON
	Notes     string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Band      Band `gorm:"foreignKey:BandID;constraint:OnDelete:CASCADE"`
}

// RehearsalAttachment is a file attached to a band's rehearsal notes.
// file_path and file_name were NOT NULL historically; the columns were
// loosened once attachments could be registered before upload completes.
type RehearsalAttachment struct {
	ID         uint64  `gorm:"primaryKey;autoIncrement"`
	BandID     uint64  `gorm:"not null;index:ix_rehearsal_attachments_band_id"`
	FileName   *string `gorm:"size:255"`
	FilePath   *string `gorm:"size:512"`
	MimeType   string  `gorm:"size:128"`
	UploadedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	Band       Band    `gorm:"foreignKey:BandID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name for Setlist
func (Setlist) TableName() string {
	return "setlists"
}

// TableName overrides the table name for RehearsalAttachment
func (RehearsalAttachment) TableName() string {
	return "rehearsal_attachments"
}
