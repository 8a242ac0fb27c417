package learned

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

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_learned_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.LearnedWord{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_SaveLearnedWords(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.SaveLearnedWords([]entities.LearnedWord{
		{Word: "house", Meaning: "ev", Level: entities.LevelA1},
		{Word: "water", Meaning: "su", Level: entities.LevelA1},
	}, "en-tr")
	require.NoError(t, err)

	count, err := repo.CountLearnedWords("en-tr")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestRepository_SaveLearnedWords_ReplacesExisting(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	first := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	err := repo.SaveLearnedWords([]entities.LearnedWord{
		{Word: "house", Meaning: "ev", Level: entities.LevelA1, LearnedAt: first},
	}, "en-tr")
	require.NoError(t, err)

	// Re-saving the same word updates the record in place
	second := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)
	err = repo.SaveLearnedWords([]entities.LearnedWord{
		{Word: "house", Meaning: "ev, konut", Level: entities.LevelA2, LearnedAt: second},
	}, "en-tr")
	require.NoError(t, err)

	words, err := repo.GetLearnedWords("en-tr")
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "ev, konut", words[0].Meaning)
	assert.Equal(t, entities.LevelA2, words[0].Level)
	assert.Equal(t, second.Unix(), words[0].LearnedAt.Unix())
}

func TestRepository_SaveLearnedWords_DefaultTimestamp(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.SaveLearnedWords([]entities.LearnedWord{
		{Word: "house", Meaning: "ev"},
	}, "en-tr")
	require.NoError(t, err)

	words, err := repo.GetLearnedWords("en-tr")
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.False(t, words[0].LearnedAt.IsZero())
}

func TestRepository_GetLearnedWords_MostRecentFirst(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.SaveLearnedWords([]entities.LearnedWord{
		{Word: "older", LearnedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Word: "newer", LearnedAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)},
	}, "en-tr")
	require.NoError(t, err)

	words, err := repo.GetLearnedWords("en-tr")
	require.NoError(t, err)
	require.Len(t, words, 2)
	assert.Equal(t, "newer", words[0].Word)
	assert.Equal(t, "older", words[1].Word)
}

func TestRepository_DeleteLearnedWord(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.SaveLearnedWords([]entities.LearnedWord{
		{Word: "house", Meaning: "ev"},
	}, "en-tr")
	require.NoError(t, err)

	deleted, err := repo.DeleteLearnedWord("house", "en-tr")
	require.NoError(t, err)
	assert.True(t, deleted)

	count, err := repo.CountLearnedWords("en-tr")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestRepository_DeleteLearnedWord_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	deleted, err := repo.DeleteLearnedWord("nonexistent", "en-tr")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRepository_IsWordLearned(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.SaveLearnedWords([]entities.LearnedWord{
		{Word: "house", Meaning: "ev"},
	}, "en-tr")
	require.NoError(t, err)

	learned, err := repo.IsWordLearned("house", "en-tr")
	require.NoError(t, err)
	assert.True(t, learned)

	// Same word in a different pair is a different record
	learned, err = repo.IsWordLearned("house", "en-de")
	require.NoError(t, err)
	assert.False(t, learned)
}
