package dictionary

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kelimeci/kelimeci/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_dictionary_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Word{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func seedLevel(t *testing.T, repo *Repository, level entities.Level, pair string, words ...string) {
	t.Helper()
	inputs := make([]WordInput, len(words))
	for i, w := range words {
		inputs[i] = WordInput{Word: w, Meaning: "meaning of " + w}
	}
	require.NoError(t, repo.SaveWords(inputs, level, pair))
}

func TestRepository_SaveWords_Duplicates(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	seedLevel(t, repo, entities.LevelA1, "en-tr", "house", "water")

	// Reloading the same batch must not create duplicate rows
	seedLevel(t, repo, entities.LevelA1, "en-tr", "house", "water", "bread")

	words, err := repo.GetWords(entities.LevelA1, "en-tr")
	require.NoError(t, err)
	assert.Len(t, words, 3)
}

func TestRepository_SaveWords_SameWordDifferentLevel(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	seedLevel(t, repo, entities.LevelA1, "en-tr", "run")
	seedLevel(t, repo, entities.LevelB1, "en-tr", "run")

	count, err := repo.CountWords("en-tr")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestRepository_SaveWords_Empty(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.SaveWords(nil, entities.LevelA1, "en-tr")
	assert.NoError(t, err)
}

func TestRepository_GetWords_ScopedByPair(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	seedLevel(t, repo, entities.LevelA1, "en-tr", "house")
	seedLevel(t, repo, entities.LevelA1, "en-de", "haus")

	words, err := repo.GetWords(entities.LevelA1, "en-tr")
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "house", words[0].Word)
}

func TestRepository_GetAllWords_FairSampling(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	seedLevel(t, repo, entities.LevelA1, "en-tr",
		"a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9", "a10")
	seedLevel(t, repo, entities.LevelA2, "en-tr",
		"b1", "b2", "b3", "b4", "b5", "b6", "b7", "b8", "b9", "b10")
	seedLevel(t, repo, entities.LevelB1, "en-tr",
		"c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8", "c9", "c10")

	words, err := repo.GetAllWords("en-tr", 9, 0)
	require.NoError(t, err)
	require.Len(t, words, 9)

	// With three levels each holding enough rows, every level contributes
	// an equal share.
	perLevel := map[entities.Level]int{}
	for _, w := range words {
		perLevel[w.Level]++
	}
	assert.Equal(t, 3, perLevel[entities.LevelA1])
	assert.Equal(t, 3, perLevel[entities.LevelA2])
	assert.Equal(t, 3, perLevel[entities.LevelB1])
}

func TestRepository_GetAllWords_RemainderSpread(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	seedLevel(t, repo, entities.LevelA1, "en-tr", "a1", "a2", "a3", "a4")
	seedLevel(t, repo, entities.LevelA2, "en-tr", "b1", "b2", "b3", "b4")

	words, err := repo.GetAllWords("en-tr", 5, 0)
	require.NoError(t, err)
	assert.Len(t, words, 5)
}

func TestRepository_GetAllWords_NoData(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	words, err := repo.GetAllWords("en-tr", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestRepository_GetAllWords_ZeroLimit(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	seedLevel(t, repo, entities.LevelA1, "en-tr", "house")

	words, err := repo.GetAllWords("en-tr", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestRepository_SearchWords_MatchesWordAndMeaning(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.SaveWords([]WordInput{
		{Word: "house", Meaning: "ev"},
		{Word: "household", Meaning: "hane"},
		{Word: "flat", Meaning: "apartment on one floor"},
	}, entities.LevelA1, "en-tr"))

	// Substring match on the word column
	words, err := repo.SearchWords("hous", "en-tr", 10, 0)
	require.NoError(t, err)
	assert.Len(t, words, 2)

	// Case-insensitive match on the meaning column
	words, err = repo.SearchWords("APARTMENT", "en-tr", 10, 0)
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "flat", words[0].Word)
}

func TestRepository_SearchWordsByQueryAndLevel(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	seedLevel(t, repo, entities.LevelA1, "en-tr", "run")
	seedLevel(t, repo, entities.LevelB1, "en-tr", "runner")

	words, err := repo.SearchWordsByQueryAndLevel("run", entities.LevelB1, "en-tr", 10, 0)
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "runner", words[0].Word)

	// Empty level searches all levels
	words, err = repo.SearchWordsByQueryAndLevel("run", "", "en-tr", 10, 0)
	require.NoError(t, err)
	assert.Len(t, words, 2)
}

func TestRepository_WordStreaks(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	seedLevel(t, repo, entities.LevelA1, "en-tr", "house")

	require.NoError(t, repo.IncrementWordStreak("house", entities.LevelA1, "en-tr"))
	require.NoError(t, repo.IncrementWordStreak("house", entities.LevelA1, "en-tr"))

	words, err := repo.GetWordsWithStreaks("en-tr")
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, 2, words[0].Streak)

	require.NoError(t, repo.DecrementWordStreak("house", entities.LevelA1, "en-tr"))
	words, err = repo.GetWordsWithStreaks("en-tr")
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, 1, words[0].Streak)
}

func TestRepository_DecrementWordStreak_FloorsAtZero(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	seedLevel(t, repo, entities.LevelA1, "en-tr", "house")

	// Decrementing a zero streak must not go negative
	require.NoError(t, repo.DecrementWordStreak("house", entities.LevelA1, "en-tr"))
	require.NoError(t, repo.DecrementWordStreak("house", entities.LevelA1, "en-tr"))

	words, err := repo.GetWords(entities.LevelA1, "en-tr")
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, 0, words[0].Streak)
}

func TestRepository_ResetWordStreak(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	seedLevel(t, repo, entities.LevelA1, "en-tr", "house")
	require.NoError(t, repo.IncrementWordStreak("house", entities.LevelA1, "en-tr"))
	require.NoError(t, repo.IncrementWordStreak("house", entities.LevelA1, "en-tr"))

	require.NoError(t, repo.ResetWordStreak("house", entities.LevelA1, "en-tr"))

	words, err := repo.GetWordsWithStreaks("en-tr")
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestRepository_GetStreakStatistics(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	seedLevel(t, repo, entities.LevelA1, "en-tr", "house", "water", "bread", "book")
	require.NoError(t, repo.IncrementWordStreak("house", entities.LevelA1, "en-tr"))
	require.NoError(t, repo.IncrementWordStreak("house", entities.LevelA1, "en-tr"))
	require.NoError(t, repo.IncrementWordStreak("water", entities.LevelA1, "en-tr"))

	stats, err := repo.GetStreakStatistics("en-tr")
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalWords)
	assert.Equal(t, int64(2), stats.WordsOnStreak)
	assert.InDelta(t, 0.75, stats.AverageStreak, 0.001)
	assert.Equal(t, 2, stats.Histogram[0])
	assert.Equal(t, 1, stats.Histogram[1])
	assert.Equal(t, 1, stats.Histogram[2])
}

func TestRepository_GetStreakStatistics_Empty(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	stats, err := repo.GetStreakStatistics("en-tr")
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalWords)
	assert.Equal(t, float64(0), stats.AverageStreak)
	assert.Empty(t, stats.Histogram)
}

func TestRepository_IsLanguageDataLoaded(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	loaded, err := repo.IsLanguageDataLoaded("en-tr")
	require.NoError(t, err)
	assert.False(t, loaded)

	seedLevel(t, repo, entities.LevelA1, "en-tr", "house")

	loaded, err = repo.IsLanguageDataLoaded("en-tr")
	require.NoError(t, err)
	assert.True(t, loaded)

	// Other pairs stay unaffected
	loaded, err = repo.IsLanguageDataLoaded("en-de")
	require.NoError(t, err)
	assert.False(t, loaded)
}
