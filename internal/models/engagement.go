package models

import "time"

// GigView logs a public page view of an event listing
type GigView struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	EventID       uint64    `gorm:"not null;index:ix_gig_views_event_id;index:ix_gig_views_event_viewed,priority:1"`
	ViewerSession string    `gorm:"type:char(36)"`
	Referrer      string    `gorm:"size:512"`
	ViewedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index:ix_gig_views_event_viewed,priority:2"`
	Event         Event     `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// GigEngagement logs a deliberate interaction with an event listing
// (ticket click, share, RSVP). The member link survives member deletion
// as NULL so aggregate counts stay intact.
type GigEngagement struct {
	ID           uint64      `gorm:"primaryKey;autoIncrement"`
	EventID      uint64      `gorm:"not null;index:ix_gig_engagements_event_id"`
	BandMemberID *uint64     `gorm:"index:ix_gig_engagements_band_member_id"`
	Kind         string      `gorm:"size:32;not null"`
	OccurredAt   time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP"`
	Event        Event       `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	BandMember   *BandMember `gorm:"foreignKey:BandMemberID;constraint:OnDelete:SET NULL"`
}

// TableName overrides the table name for GigView
func (GigView) TableName() string {
	return "gig_views"
}

// TableName overrides the table name for GigEngagement
func (GigEngagement) TableName() string {
	return "gig_engagements"
}
