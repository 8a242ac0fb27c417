package lists

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
	dbPath := "./test_lists_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.WordList{}, &entities.WordListItem{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_CreateWordList(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	id, ok := repo.CreateWordList("Travel", "en-tr")
	require.True(t, ok)
	assert.NotZero(t, id)
}

func TestRepository_CreateWordList_DuplicateName(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, ok := repo.CreateWordList("Travel", "en-tr")
	require.True(t, ok)

	// Same name in the same pair collides
	_, ok = repo.CreateWordList("Travel", "en-tr")
	assert.False(t, ok)

	// Same name in another pair is fine
	_, ok = repo.CreateWordList("Travel", "en-de")
	assert.True(t, ok)
}

func TestRepository_GetWordListByName(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	id, ok := repo.CreateWordList("Travel", "en-tr")
	require.True(t, ok)

	list, err := repo.GetWordListByName("Travel", "en-tr")
	require.NoError(t, err)
	require.NotNil(t, list)
	assert.Equal(t, id, list.ID)

	// Missing lists return nil without an error
	list, err = repo.GetWordListByName("Missing", "en-tr")
	require.NoError(t, err)
	assert.Nil(t, list)
}

func TestRepository_AddWordToList_Upsert(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	id, ok := repo.CreateWordList("Travel", "en-tr")
	require.True(t, ok)

	err := repo.AddWordToList(id, entities.WordListItem{Word: "journey", Meaning: "yolculuk"})
	require.NoError(t, err)

	// Re-adding the same word refreshes the item instead of duplicating it
	err = repo.AddWordToList(id, entities.WordListItem{Word: "journey", Meaning: "seyahat", Level: entities.LevelA2})
	require.NoError(t, err)

	items, err := repo.GetWordsFromList(id)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "seyahat", items[0].Meaning)
	assert.Equal(t, entities.LevelA2, items[0].Level)
}

func TestRepository_GetWordsFromList_InsertionOrder(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	id, ok := repo.CreateWordList("Travel", "en-tr")
	require.True(t, ok)

	for _, word := range []string{"zebra", "apple", "middle"} {
		require.NoError(t, repo.AddWordToList(id, entities.WordListItem{Word: word}))
	}

	items, err := repo.GetWordsFromList(id)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "zebra", items[0].Word)
	assert.Equal(t, "apple", items[1].Word)
	assert.Equal(t, "middle", items[2].Word)
}

func TestRepository_RemoveWordFromList(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	id, ok := repo.CreateWordList("Travel", "en-tr")
	require.True(t, ok)
	require.NoError(t, repo.AddWordToList(id, entities.WordListItem{Word: "journey"}))

	removed, err := repo.RemoveWordFromList(id, "journey")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.RemoveWordFromList(id, "journey")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRepository_DeleteWordList_CascadesToItems(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	id, ok := repo.CreateWordList("Travel", "en-tr")
	require.True(t, ok)
	require.NoError(t, repo.AddWordToList(id, entities.WordListItem{Word: "journey"}))
	require.NoError(t, repo.AddWordToList(id, entities.WordListItem{Word: "weather"}))

	err := repo.DeleteWordList(id)
	require.NoError(t, err)

	lists, err := repo.GetWordLists("en-tr")
	require.NoError(t, err)
	assert.Empty(t, lists)

	items, err := repo.GetWordsFromList(id)
	require.NoError(t, err)
	assert.Empty(t, items)
}
