package settingsstore

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kelimeci/kelimeci/internal/database/settings"
	"github.com/kelimeci/kelimeci/internal/entities"
)

func setupStore(t *testing.T) (*SettingsStore, func()) {
	dbPath := "./test_settingsstore_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Setting{})
	require.NoError(t, err)

	store := New(settings.NewRepository(db))

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return store, cleanup
}

func TestSettingsStore_ThemeDefault(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()

	assert.Equal(t, DefaultTheme, store.GetTheme())

	require.NoError(t, store.SetTheme("dark"))
	assert.Equal(t, "dark", store.GetTheme())
}

func TestSettingsStore_LanguagePair(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()

	assert.Equal(t, "", store.GetLanguagePair())

	require.NoError(t, store.SetLanguagePair("en-tr"))
	assert.Equal(t, "en-tr", store.GetLanguagePair())
}

func TestSettingsStore_Onboarding(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()

	assert.False(t, store.OnboardingSeen())

	require.NoError(t, store.MarkOnboardingSeen())
	assert.True(t, store.OnboardingSeen())
}

func TestSettingsStore_GetItem_Unset(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()

	value, err := store.GetItem("missing")
	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestSettingsStore_RemoveItem_Absent(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()

	assert.NoError(t, store.RemoveItem("missing"))
}

func TestSettingsStore_ExportForBackup_FiltersVolatileKeys(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()

	require.NoError(t, store.SetItem(entities.SettingKeyTheme, "dark"))
	require.NoError(t, store.SetItem(entities.SettingKeyDailyGoal, "20"))
	require.NoError(t, store.SetItem(entities.SettingKeyCachePrefix+"words_v1", "blob"))
	require.NoError(t, store.SetItem(entities.SettingKeyOnboardingSeen, "true"))
	require.NoError(t, store.SetItem(entities.SettingKeyWordsSyncedAt, "2026-08-01T00:00:00Z"))

	exported, err := store.ExportForBackup()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		entities.SettingKeyTheme:     "dark",
		entities.SettingKeyDailyGoal: "20",
	}, exported)
}

func TestIsExcludedFromBackup(t *testing.T) {
	assert.True(t, IsExcludedFromBackup(entities.SettingKeyCachePrefix+"anything"))
	assert.True(t, IsExcludedFromBackup(entities.SettingKeyOnboardingSeen))
	assert.True(t, IsExcludedFromBackup(entities.SettingKeyImagesSyncedAt))
	assert.False(t, IsExcludedFromBackup(entities.SettingKeyTheme))
	assert.False(t, IsExcludedFromBackup(entities.SettingKeyLanguagePair))
}
