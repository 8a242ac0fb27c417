package entities

import (
	"time"
)

type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Known setting keys
const (
	// UI preferences, restored from backups
	SettingKeyTheme        = "theme"
	SettingKeyAppLanguage  = "app_language"
	SettingKeyLanguagePair = "language_pair"
	SettingKeyDailyGoal    = "daily_goal"

	// One-time flags, never included in backups
	SettingKeyOnboardingSeen = "onboarding_seen"

	// Sync bookkeeping
	SettingKeyWordsSyncedAt  = "words_synced_at"
	SettingKeyImagesSyncedAt = "images_synced_at"

	// Volatile cache entries carry this prefix and never travel in backups.
	SettingKeyCachePrefix = "cache_"
)
