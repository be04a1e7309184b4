package migrations

import (
	"time"

	"gorm.io/gorm"

	"gorm.io/datatypes"
)

// Schema snapshots as of revision 9f1c2b3a4d5e.

type bandV1 struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"uniqueIndex;size:255;not null"`
	Genre        string `gorm:"size:100"`
	HomeCity     string `gorm:"size:255"`
	ContactEmail string `gorm:"size:255"`
	Bio          string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (bandV1) TableName() string { return "bands" }

type bandMemberV1 struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	BandID     uint64 `gorm:"not null;index:ix_band_members_band_id"`
	Name       string `gorm:"size:255;not null"`
	Instrument string `gorm:"size:100"`
	Email      string `gorm:"size:255"`
	Phone      string `gorm:"size:32"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Band       bandV1 `gorm:"foreignKey:BandID;constraint:OnDelete:CASCADE"`
}

func (bandMemberV1) TableName() string { return "band_members" }

type venueV1 struct {
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

func (venueV1) TableName() string { return "venues" }

type eventV1 struct {
	ID          uint64  `gorm:"primaryKey;autoIncrement"`
	VenueID     *uint64 `gorm:"index:ix_events_venue_id"`
	Title       string  `gorm:"size:255;not null"`
	EventDate   time.Time
	Description string   `gorm:"type:text"`
	Status      string   `gorm:"size:32;not null;default:scheduled"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Venue       *venueV1 `gorm:"foreignKey:VenueID;constraint:OnDelete:SET NULL"`
}

func (eventV1) TableName() string { return "events" }

type setlistV1 struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	BandID    uint64 `gorm:"not null;index:ix_setlists_band_id"`
	Name      string `gorm:"size:255;not null"`
	Songs     datatypes.JSON
	Notes     string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Band      bandV1 `gorm:"foreignKey:BandID;constraint:OnDelete:CASCADE"`
}

func (setlistV1) TableName() string { return "setlists" }

type ticketSaleV1 struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	EventID    uint64    `gorm:"not null;index:ix_ticket_sales_event_id"`
	Quantity   int       `gorm:"not null;default:1"`
	PriceCents int64     `gorm:"not null;default:0"`
	Channel    string    `gorm:"size:64"`
	SoldAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	Event      eventV1   `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

func (ticketSaleV1) TableName() string { return "ticket_sales" }

// rehearsalAttachmentV1 has NOT NULL file columns; revision 1b2c3d4e5f6a
// loosens them later.
type rehearsalAttachmentV1 struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	BandID     uint64    `gorm:"not null;index:ix_rehearsal_attachments_band_id"`
	FileName   string    `gorm:"size:255;not null"`
	FilePath   string    `gorm:"size:512;not null"`
	MimeType   string    `gorm:"size:128"`
	UploadedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	Band       bandV1    `gorm:"foreignKey:BandID;constraint:OnDelete:CASCADE"`
}

func (rehearsalAttachmentV1) TableName() string { return "rehearsal_attachments" }

// initialSchema creates the base tables. Root of the revision chain.
func initialSchema() *Revision {
	create := []interface{}{
		&bandV1{},
		&bandMemberV1{},
		&venueV1{},
		&eventV1{},
		&setlistV1{},
		&ticketSaleV1{},
		&rehearsalAttachmentV1{},
	}

	return &Revision{
		ID: "9f1c2b3a4d5e",
		Migrate: func(tx *gorm.DB) error {
			for _, model := range create {
				if tx.Migrator().HasTable(model) {
					continue
				}
				if err := tx.AutoMigrate(model); err != nil {
					return err
				}
			}
			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			// Reverse creation order so dependents go first.
			for i := len(create) - 1; i >= 0; i-- {
				if !tx.Migrator().HasTable(create[i]) {
					continue
				}
				if err := tx.Migrator().DropTable(create[i]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
