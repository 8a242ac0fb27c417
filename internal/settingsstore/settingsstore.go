// Package settingsstore is the typed facade over the key-value settings
// table. The UI layer reads its preferences through it, and the backup
// codec uses it as the settings boundary, including the exclusion rules
// for keys that must never travel in a backup.
package settingsstore

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/kelimeci/kelimeci/internal/database/settings"
	"github.com/kelimeci/kelimeci/internal/entities"
)

const (
	DefaultTheme       = "light"
	DefaultAppLanguage = "en"
)

// Priority: database > default
type SettingsStore struct {
	repo *settings.Repository
}

func New(repo *settings.Repository) *SettingsStore {
	return &SettingsStore{repo: repo}
}

func (s *SettingsStore) GetTheme() string {
	return s.getOrDefault(entities.SettingKeyTheme, DefaultTheme)
}

func (s *SettingsStore) SetTheme(theme string) error {
	return s.repo.SetSetting(entities.SettingKeyTheme, theme)
}

func (s *SettingsStore) GetAppLanguage() string {
	return s.getOrDefault(entities.SettingKeyAppLanguage, DefaultAppLanguage)
}

func (s *SettingsStore) SetAppLanguage(lang string) error {
	return s.repo.SetSetting(entities.SettingKeyAppLanguage, lang)
}

func (s *SettingsStore) GetLanguagePair() string {
	return s.getOrDefault(entities.SettingKeyLanguagePair, "")
}

func (s *SettingsStore) SetLanguagePair(pair string) error {
	return s.repo.SetSetting(entities.SettingKeyLanguagePair, pair)
}

func (s *SettingsStore) OnboardingSeen() bool {
	return s.getOrDefault(entities.SettingKeyOnboardingSeen, "") == "true"
}

func (s *SettingsStore) MarkOnboardingSeen() error {
	return s.repo.SetSetting(entities.SettingKeyOnboardingSeen, "true")
}

// GetItem returns the raw value for a key, or "" when the key is unset.
func (s *SettingsStore) GetItem(key string) (string, error) {
	setting, err := s.repo.GetSetting(key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

// SetItem writes a raw key/value pair.
func (s *SettingsStore) SetItem(key, value string) error {
	return s.repo.SetSetting(key, value)
}

// RemoveItem deletes a key; removing an absent key is not an error.
func (s *SettingsStore) RemoveItem(key string) error {
	err := s.repo.DeleteSetting(key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

// ExportForBackup returns all settings eligible for a backup document.
// Volatile cache entries and one-time flags are filtered out: restoring
// them onto another installation would either bloat the document or replay
// onboarding state that belongs to the device, not the user's data.
func (s *SettingsStore) ExportForBackup() (map[string]string, error) {
	all, err := s.repo.GetAllSettings()
	if err != nil {
		return nil, err
	}
	exported := make(map[string]string, len(all))
	for key, value := range all {
		if IsExcludedFromBackup(key) {
			continue
		}
		exported[key] = value
	}
	return exported, nil
}

// IsExcludedFromBackup reports whether a settings key is barred from
// backup documents.
func IsExcludedFromBackup(key string) bool {
	if strings.HasPrefix(key, entities.SettingKeyCachePrefix) {
		return true
	}
	switch key {
	case entities.SettingKeyOnboardingSeen,
		entities.SettingKeyWordsSyncedAt,
		entities.SettingKeyImagesSyncedAt:
		return true
	}
	return false
}

func (s *SettingsStore) getOrDefault(key, fallback string) string {
	setting, err := s.repo.GetSetting(key)
	if err != nil || setting.Value == "" {
		return fallback
	}
	return setting.Value
}
