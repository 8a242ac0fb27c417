// Package backup serializes one language pair's learned words, exercise
// history, custom lists and settings into a portable versioned JSON
// document, and replays such documents into a possibly non-empty store.
//
// The codec never touches SQL: both directions go through the public store
// operations, so every invariant the repositories enforce also holds for
// restored data.
package backup

import (
	"time"

	"github.com/kelimeci/kelimeci/internal/entities"
)

// LearnedStore is the slice of the learned-word repository the codec uses.
type LearnedStore interface {
	GetLearnedWords(languagePair string) ([]entities.LearnedWord, error)
	SaveLearnedWords(words []entities.LearnedWord, languagePair string) error
}

// ExerciseStore is the slice of the exercise repository the codec uses.
type ExerciseStore interface {
	GetExerciseResults(languagePair string) ([]entities.ExerciseResult, error)
	GetExerciseDetails(exerciseID uint) ([]entities.QuestionRecord, error)
	SaveExerciseResult(result entities.ExerciseResult) (uint, bool)
	SaveExerciseDetails(exerciseID uint, records []entities.QuestionRecord, languagePair string) error
}

// ListStore is the slice of the word-list repository the codec uses.
type ListStore interface {
	GetWordLists(languagePair string) ([]entities.WordList, error)
	GetWordListByName(name, languagePair string) (*entities.WordList, error)
	GetWordsFromList(listID uint) ([]entities.WordListItem, error)
	CreateWordList(name, languagePair string) (uint, bool)
	AddWordToList(listID uint, item entities.WordListItem) error
	DeleteWordList(listID uint) error
}

// SettingsBoundary is the generic key-value access the codec needs; the
// exclusion filtering behind ExportForBackup belongs to the settings
// facade, not to this package.
type SettingsBoundary interface {
	ExportForBackup() (map[string]string, error)
	SetItem(key, value string) error
}

// Service is the backup/restore codec over the injected stores.
type Service struct {
	learned   LearnedStore
	exercises ExerciseStore
	lists     ListStore
	settings  SettingsBoundary

	backupDir string
	now       func() time.Time
}

// NewService creates a backup codec writing documents into backupDir.
func NewService(learned LearnedStore, exercises ExerciseStore, lists ListStore, settings SettingsBoundary, backupDir string) *Service {
	return &Service{
		learned:   learned,
		exercises: exercises,
		lists:     lists,
		settings:  settings,
		backupDir: backupDir,
		now:       time.Now,
	}
}
