package models

import "time"

// Event represents a show or gig hosted at a venue
type Event struct {
	ID          uint64  `gorm:"primaryKey;autoIncrement"`
	VenueID     *uint64 `gorm:"index:ix_events_venue_id"`
	Title       string  `gorm:"size:255;not null"`
	EventDate   time.Time
	Description string `gorm:"type:text"`
	Status      string `gorm:"size:32;not null;default:scheduled"`
	TicketURL   string `gorm:"size:512"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Venue       *Venue `gorm:"foreignKey:VenueID;constraint:OnDelete:SET NULL"`
}

// BandEvent links a band to an event it plays, with slot timing.
// A band appears at most once per event.
type BandEvent struct {
	ID               uint64 `gorm:"primaryKey;autoIncrement"`
	BandID           uint64 `gorm:"not null;uniqueIndex:uq_band_events_band_event"`
	EventID          uint64 `gorm:"not null;uniqueIndex:uq_band_events_band_event"`
	Status           string `gorm:"size:32;not null;default:pending"`
	LoadInTime       *time.Time
	SoundcheckTime   *time.Time
	SetTime          *time.Time
	SetLengthMinutes *int
	PayoutCents      *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Band             Band  `gorm:"foreignKey:BandID;constraint:OnDelete:CASCADE"`
	Event            Event `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// TicketSale records tickets sold for an event
type TicketSale struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	EventID    uint64    `gorm:"not null;index:ix_ticket_sales_event_id"`
	Quantity   int       `gorm:"not null;default:1"`
	PriceCents int64     `gorm:"not null;default:0"`
	Channel    string    `gorm:"size:64"`
	SoldAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	Event      Event     `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name for Event
func (Event) TableName() string {
	return "events"
}

// TableName overrides the table name for BandEvent
func (BandEvent) TableName() string {
	return "band_events"
}

// TableName overrides the table name for TicketSale
func (TicketSale) TableName() string {
	return "ticket_sales"
}
