package migrations

import (
	"time"

	"gorm.io/gorm"
)

type eventV2 struct {
	TicketURL string `gorm:"size:512"`
}

func (eventV2) TableName() string { return "events" }

type bandEventV2 struct {
	PayoutCents *int64
}

func (bandEventV2) TableName() string { return "band_events" }

// gigViewV2 exists for the composite listing-analytics index.
type gigViewV2 struct {
	EventID  uint64    `gorm:"index:ix_gig_views_event_viewed,priority:1"`
	ViewedAt time.Time `gorm:"index:ix_gig_views_event_viewed,priority:2"`
}

func (gigViewV2) TableName() string { return "gig_views" }

// addTicketingColumns adds the public ticket link on events, the payout
// amount on band_events, and the (event_id, viewed_at) index the analytics
// queries scan.
func addTicketingColumns() *Revision {
	return &Revision{
		ID:      "2c3d4e5f6a7b",
		Parents: []string{"1b2c3d4e5f6a"},
		Migrate: func(tx *gorm.DB) error {
			m := tx.Migrator()
			if !m.HasColumn(&eventV2{}, "TicketURL") {
				if err := m.AddColumn(&eventV2{}, "TicketURL"); err != nil {
					return err
				}
			}
			if !m.HasColumn(&bandEventV2{}, "PayoutCents") {
				if err := m.AddColumn(&bandEventV2{}, "PayoutCents"); err != nil {
					return err
				}
			}
			if !m.HasIndex(&gigViewV2{}, "ix_gig_views_event_viewed") {
				if err := m.CreateIndex(&gigViewV2{}, "ix_gig_views_event_viewed"); err != nil {
					return err
				}
			}
			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			m := tx.Migrator()
			if m.HasIndex(&gigViewV2{}, "ix_gig_views_event_viewed") {
				if err := m.DropIndex(&gigViewV2{}, "ix_gig_views_event_viewed"); err != nil {
					return err
				}
			}
			if m.HasColumn(&bandEventV2{}, "PayoutCents") {
				if err := m.DropColumn(&bandEventV2{}, "PayoutCents"); err != nil {
					return err
				}
			}
			if m.HasColumn(&eventV2{}, "TicketURL") {
				if err := m.DropColumn(&eventV2{}, "TicketURL"); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
