package database

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kelimeci/kelimeci/internal/entities"
)

func TestDatabaseInitialization(t *testing.T) {
	t.Run("NewDatabase creates database file", func(t *testing.T) {
		dbPath := "./init_test.db"
		defer os.Remove(dbPath)

		db, err := NewDatabase(dbPath)
		require.NoError(t, err)
		defer db.Close()

		_, err = os.Stat(dbPath)
		assert.NoError(t, err)
	})

	t.Run("NewDatabase creates all tables", func(t *testing.T) {
		dbPath := "./tables_test.db"
		defer os.Remove(dbPath)

		db, err := NewDatabase(dbPath)
		require.NoError(t, err)
		defer db.Close()

		m := db.DB.Migrator()
		for _, table := range []string{
			"words",
			"learned_words",
			"word_lists",
			"word_list_items",
			"exercise_results",
			"exercise_details",
			"unfinished_exercises",
			"background_images",
			"settings",
		} {
			assert.True(t, m.HasTable(table), "expected table %s to exist", table)
		}
	})

	t.Run("NewDatabase is idempotent on reopen", func(t *testing.T) {
		dbPath := "./idempotent_test.db"
		defer os.Remove(dbPath)

		db1, err := NewDatabase(dbPath)
		require.NoError(t, err)

		err = db1.DB.Create(&entities.Word{
			Word:         "house",
			Meaning:      "ev",
			Level:        entities.LevelA1,
			LanguagePair: "en-tr",
		}).Error
		require.NoError(t, err)
		require.NoError(t, db1.Close())

		db2, err := NewDatabase(dbPath)
		require.NoError(t, err)
		defer db2.Close()

		var count int64
		err = db2.DB.Model(&entities.Word{}).Count(&count).Error
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Close closes database connection", func(t *testing.T) {
		dbPath := "./close_test.db"
		defer os.Remove(dbPath)

		db, err := NewDatabase(dbPath)
		require.NoError(t, err)

		err = db.Close()
		assert.NoError(t, err)
	})
}

// openRawDB opens the file without running any migrations, so tests can
// construct old schema shapes by hand.
func openRawDB(t *testing.T, dbPath string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func closeRawDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func TestLegacyMigrations(t *testing.T) {
	t.Run("rebuilds learned_words without language_pair", func(t *testing.T) {
		dbPath := "./legacy_learned_test.db"
		defer os.Remove(dbPath)

		raw := openRawDB(t, dbPath)
		err := raw.Exec(`CREATE TABLE learned_words (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			word TEXT,
			meaning TEXT,
			example TEXT,
			level TEXT,
			learned_at DATETIME
		)`).Error
		require.NoError(t, err)
		err = raw.Exec(
			`INSERT INTO learned_words (word, meaning, example, level, learned_at) VALUES (?, ?, ?, ?, ?)`,
			"journey", "yolculuk", "A long journey.", "B1", time.Now(),
		).Error
		require.NoError(t, err)
		closeRawDB(t, raw)

		db, err := NewDatabase(dbPath)
		require.NoError(t, err)
		defer db.Close()

		var learned []entities.LearnedWord
		err = db.DB.Find(&learned).Error
		require.NoError(t, err)
		require.Len(t, learned, 1)
		assert.Equal(t, "journey", learned[0].Word)
		assert.Equal(t, "yolculuk", learned[0].Meaning)
		assert.Equal(t, DefaultLegacyLanguagePair, learned[0].LanguagePair)
	})

	t.Run("adds streak column to legacy words table", func(t *testing.T) {
		dbPath := "./legacy_words_test.db"
		defer os.Remove(dbPath)

		raw := openRawDB(t, dbPath)
		err := raw.Exec(`CREATE TABLE words (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			word TEXT,
			meaning TEXT,
			example TEXT,
			level TEXT,
			language_pair TEXT,
			created_at DATETIME
		)`).Error
		require.NoError(t, err)
		err = raw.Exec(
			`INSERT INTO words (word, meaning, level, language_pair) VALUES (?, ?, ?, ?)`,
			"house", "ev", "A1", "en-tr",
		).Error
		require.NoError(t, err)
		closeRawDB(t, raw)

		db, err := NewDatabase(dbPath)
		require.NoError(t, err)
		defer db.Close()

		var word entities.Word
		err = db.DB.Where("word = ?", "house").First(&word).Error
		require.NoError(t, err)
		assert.Equal(t, 0, word.Streak)
	})

	t.Run("legacy migrations are no-ops on current schema", func(t *testing.T) {
		dbPath := "./legacy_noop_test.db"
		defer os.Remove(dbPath)

		db, err := NewDatabase(dbPath)
		require.NoError(t, err)

		err = db.DB.Create(&entities.LearnedWord{
			Word:         "bridge",
			Meaning:      "köprü",
			Level:        entities.LevelA2,
			LanguagePair: "en-tr",
			LearnedAt:    time.Now(),
		}).Error
		require.NoError(t, err)
		require.NoError(t, db.Close())

		reopened, err := NewDatabase(dbPath)
		require.NoError(t, err)
		defer reopened.Close()

		var count int64
		err = reopened.DB.Model(&entities.LearnedWord{}).Count(&count).Error
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}
