package migrations

// Minimal stand-ins for tables created by earlier revisions. Later revisions
// hang foreign keys off these instead of importing the live models package,
// so their DDL stays frozen.

type bandRef struct {
	ID uint64 `gorm:"primaryKey"`
}

func (bandRef) TableName() string { return "bands" }

type bandMemberRef struct {
	ID uint64 `gorm:"primaryKey"`
}

func (bandMemberRef) TableName() string { return "band_members" }

type venueRef struct {
	ID uint64 `gorm:"primaryKey"`
}

func (venueRef) TableName() string { return "venues" }

type eventRef struct {
	ID uint64 `gorm:"primaryKey"`
}

func (eventRef) TableName() string { return "events" }

type memberEquipmentRef struct {
	ID uint64 `gorm:"primaryKey"`
}

func (memberEquipmentRef) TableName() string { return "member_equipment" }
