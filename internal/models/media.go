package models

import "time"

// YoutubeCache caches video metadata for a band's linked channel so listing
// pages do not hit the YouTube API on every render.
type YoutubeCache struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	BandID       uint64 `gorm:"not null;index:ix_youtube_cache_band_id"`
	VideoID      string `gorm:"uniqueIndex:uq_youtube_cache_video_id;size:32;not null"`
	Title        string `gorm:"size:255"`
	ChannelTitle string `gorm:"size:255"`
	Payload      JSON
	FetchedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	Band         Band      `gorm:"foreignKey:BandID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name for YoutubeCache
func (YoutubeCache) TableName() string {
	return "youtube_cache"
}
