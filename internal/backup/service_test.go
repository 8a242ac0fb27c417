package backup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kelimeci/kelimeci/internal/database/exercises"
	"github.com/kelimeci/kelimeci/internal/database/learned"
	"github.com/kelimeci/kelimeci/internal/database/lists"
	"github.com/kelimeci/kelimeci/internal/database/settings"
	"github.com/kelimeci/kelimeci/internal/entities"
	"github.com/kelimeci/kelimeci/internal/settingsstore"
)

// env bundles a full store stack over one test database, the shape the
// service is wired with in production.
type env struct {
	service   *Service
	learned   *learned.Repository
	exercises *exercises.Repository
	lists     *lists.Repository
	settings  *settingsstore.SettingsStore
	backupDir string
}

func setupEnv(t *testing.T, name string) (*env, func()) {
	t.Helper()
	dbPath := "./test_backup_" + name + ".db"
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.LearnedWord{},
		&entities.ExerciseResult{},
		&entities.ExerciseDetail{},
		&entities.WordList{},
		&entities.WordListItem{},
		&entities.Setting{},
	)
	require.NoError(t, err)

	e := &env{
		learned:   learned.NewRepository(db),
		exercises: exercises.NewRepository(db),
		lists:     lists.NewRepository(db),
		settings:  settingsstore.New(settings.NewRepository(db)),
		backupDir: t.TempDir(),
	}
	e.service = NewService(e.learned, e.exercises, e.lists, e.settings, e.backupDir)

	cleanup := func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
		os.Remove(dbPath)
	}
	return e, cleanup
}

func seedSource(t *testing.T, e *env) {
	t.Helper()

	err := e.learned.SaveLearnedWords([]entities.LearnedWord{
		{Word: "house", Meaning: "ev", Level: entities.LevelA1, LearnedAt: time.Now()},
		{Word: "journey", Meaning: "yolculuk", Level: entities.LevelB1, LearnedAt: time.Now()},
	}, "en-tr")
	require.NoError(t, err)

	resultID, ok := e.exercises.SaveExerciseResult(entities.ExerciseResult{
		ExerciseType:   entities.ExerciseTypeMultipleChoice,
		Score:          8,
		TotalQuestions: 10,
		Date:           time.Now(),
		LanguagePair:   "en-tr",
		WordSource:     entities.WordSourceDictionary,
		Level:          entities.LevelA1,
	})
	require.True(t, ok)
	err = e.exercises.SaveExerciseDetails(resultID, []entities.QuestionRecord{
		{Type: entities.QuestionTypeMultipleChoice, Question: "house", UserAnswer: "ev", CorrectAnswer: "ev", IsCorrect: true},
		{Type: entities.QuestionTypeMultipleChoice, Question: "journey", UserAnswer: "araba", CorrectAnswer: "yolculuk", IsCorrect: false},
	}, "en-tr")
	require.NoError(t, err)

	listID, ok := e.lists.CreateWordList("Travel", "en-tr")
	require.True(t, ok)
	err = e.lists.AddWordToList(listID, entities.WordListItem{
		Word: "airport", Meaning: "havalimanı", Level: entities.LevelA2,
	})
	require.NoError(t, err)

	require.NoError(t, e.settings.SetTheme("dark"))
	require.NoError(t, e.settings.SetItem("daily_goal", "25"))
}

func TestBackupRestoreRoundTrip(t *testing.T) {
	source, cleanupSource := setupEnv(t, "roundtrip_source")
	defer cleanupSource()
	target, cleanupTarget := setupEnv(t, "roundtrip_target")
	defer cleanupTarget()

	seedSource(t, source)

	path, err := source.service.Backup("en-tr")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "kelimeci-backup-en-tr-"))

	result := target.service.Restore(path, nil)
	assert.True(t, result.Success)
	assert.Equal(t, "en-tr", result.LanguagePair)
	assert.Empty(t, result.Skipped)

	restored, err := target.learned.GetLearnedWords("en-tr")
	require.NoError(t, err)
	assert.Len(t, restored, 2)

	results, err := target.exercises.GetExerciseResults("en-tr")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 8, results[0].Score)

	questions, err := target.exercises.GetExerciseDetails(results[0].ID)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "house", questions[0].Question)
	assert.True(t, questions[0].IsCorrect)

	list, err := target.lists.GetWordListByName("Travel", "en-tr")
	require.NoError(t, err)
	require.NotNil(t, list)
	items, err := target.lists.GetWordsFromList(list.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "airport", items[0].Word)

	assert.Equal(t, "dark", target.settings.GetTheme())
	goal, err := target.settings.GetItem("daily_goal")
	require.NoError(t, err)
	assert.Equal(t, "25", goal)
}

func TestBackupEmptyDatabase(t *testing.T) {
	e, cleanup := setupEnv(t, "empty")
	defer cleanup()

	path, err := e.service.Backup("en-tr")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, DocumentVersion, doc.Version)
	assert.Equal(t, "en-tr", doc.LanguagePair)
	assert.NotEmpty(t, doc.ID)
	assert.NotEmpty(t, doc.Timestamp)
	assert.Empty(t, doc.LearnedWords)
	assert.Empty(t, doc.ExerciseResults)
}

func TestRestoreFailsClosed(t *testing.T) {
	e, cleanup := setupEnv(t, "failclosed")
	defer cleanup()

	t.Run("missing file", func(t *testing.T) {
		result := e.service.Restore(filepath.Join(e.backupDir, "no-such-file.json"), nil)
		assert.False(t, result.Success)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := filepath.Join(e.backupDir, "garbage.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		result := e.service.Restore(path, nil)
		assert.False(t, result.Success)
	})

	t.Run("missing version writes nothing", func(t *testing.T) {
		doc := map[string]any{
			"timestamp":    "2024-05-01T10:00:00Z",
			"languagePair": "en-tr",
			"learnedWords": []map[string]any{
				{"word": "house", "meaning": "ev", "level": "A1"},
			},
		}
		data, err := json.Marshal(doc)
		require.NoError(t, err)
		path := filepath.Join(e.backupDir, "versionless.json")
		require.NoError(t, os.WriteFile(path, data, 0644))

		result := e.service.Restore(path, nil)
		assert.False(t, result.Success)

		words, err := e.learned.GetLearnedWords("en-tr")
		require.NoError(t, err)
		assert.Empty(t, words)
	})
}

func TestRestoreReplacesExistingList(t *testing.T) {
	source, cleanupSource := setupEnv(t, "replace_source")
	defer cleanupSource()
	target, cleanupTarget := setupEnv(t, "replace_target")
	defer cleanupTarget()

	sourceListID, ok := source.lists.CreateWordList("Travel", "en-tr")
	require.True(t, ok)
	require.NoError(t, source.lists.AddWordToList(sourceListID, entities.WordListItem{
		Word: "airport", Meaning: "havalimanı", Level: entities.LevelA2,
	}))

	targetListID, ok := target.lists.CreateWordList("Travel", "en-tr")
	require.True(t, ok)
	require.NoError(t, target.lists.AddWordToList(targetListID, entities.WordListItem{
		Word: "stale", Meaning: "bayat", Level: entities.LevelB1,
	}))

	path, err := source.service.Backup("en-tr")
	require.NoError(t, err)

	result := target.service.Restore(path, nil)
	assert.True(t, result.Success)
	assert.Empty(t, result.Skipped)

	list, err := target.lists.GetWordListByName("Travel", "en-tr")
	require.NoError(t, err)
	require.NotNil(t, list)
	items, err := target.lists.GetWordsFromList(list.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "airport", items[0].Word)
}

func TestRestoreFiresSettingsCallback(t *testing.T) {
	source, cleanupSource := setupEnv(t, "callback_source")
	defer cleanupSource()
	target, cleanupTarget := setupEnv(t, "callback_target")
	defer cleanupTarget()

	require.NoError(t, source.settings.SetTheme("dark"))

	path, err := source.service.Backup("en-tr")
	require.NoError(t, err)

	fired := false
	result := target.service.Restore(path, func() {
		fired = true
		assert.Equal(t, "dark", target.settings.GetTheme())
	})
	assert.True(t, result.Success)
	assert.True(t, fired)
}
