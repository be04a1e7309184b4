package models

import (
	"encoding/json"
	"time"

	"github.com/noahbolger1430/Backline-sub001/internal/types"
)

// SavedTour is a routed tour a band has planned and saved.
// tour_data holds the routed stops, tour_params the inputs that produced them;
// both are opaque JSON to this layer.
type SavedTour struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	BandID     uint64    `gorm:"not null;index:ix_saved_tours_band_id"`
	Name       string    `gorm:"size:255;not null"`
	StartDate  time.Time `gorm:"type:date;not null"`
	EndDate    time.Time `gorm:"type:date;not null"`
	TourData   JSON
	TourParams JSON
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Band       Band `gorm:"foreignKey:BandID;constraint:OnDelete:CASCADE"`
}

// TourParams is the typed shape of the tour_params blob. Numeric fields use
// FlexUint64 because older rows store them as JSON strings.
type TourParams struct {
	ExpectedDraw    types.FlexUint64 `json:"expected_draw"`
	MaxDriveMinutes types.FlexUint64 `json:"max_drive_minutes"`
	Regions         []string         `json:"regions"`
}

// DecodeParams unmarshals the tour_params blob into its typed form.
func (t *SavedTour) DecodeParams() (TourParams, error) {
	var p TourParams
	if len(t.TourParams.JSON) == 0 {
		return p, nil
	}
	err := json.Unmarshal(t.TourParams.JSON, &p)
	return p, err
}

// TableName overrides the table name for SavedTour
func (SavedTour) TableName() string {
	return "saved_tours"
}
