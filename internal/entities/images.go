package entities

import (
	"time"
)

// BackgroundImage maps a remote image URL to an optional locally cached
// file path. Not scoped by language pair.
type BackgroundImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	URL       string    `gorm:"size:2048;uniqueIndex:idx_background_images_url" json:"url"`
	LocalPath string    `gorm:"size:1024" json:"local_path,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (BackgroundImage) TableName() string {
	return "background_images"
}
