// Package learned provides database operations for the user's learned-word
// records.
//
// Learned words are distinct from the dictionary: one row per
// (word, language pair), replaced in place when the user re-saves a word.
package learned

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kelimeci/kelimeci/internal/entities"
)

const saveBatchSize = 500

// Repository handles all learned-word database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new learned-word repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// SaveLearnedWords bulk-saves learned words for one language pair.
// Re-saving an already-learned word replaces its meaning, example, level
// and timestamp instead of erroring. Batches run in one transaction so a
// failure rolls the whole save back. Empty input is a no-op.
func (r *Repository) SaveLearnedWords(words []entities.LearnedWord, languagePair string) error {
	if len(words) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]entities.LearnedWord, len(words))
	for i, w := range words {
		rows[i] = entities.LearnedWord{
			Word:         w.Word,
			Meaning:      w.Meaning,
			Example:      w.Example,
			Level:        w.Level,
			LanguagePair: languagePair,
			LearnedAt:    w.LearnedAt,
		}
		if rows[i].LearnedAt.IsZero() {
			rows[i].LearnedAt = now
		}
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		for start := 0; start < len(rows); start += saveBatchSize {
			end := min(start+saveBatchSize, len(rows))
			batch := rows[start:end]
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "word"}, {Name: "language_pair"}},
				DoUpdates: clause.AssignmentColumns([]string{"meaning", "example", "level", "learned_at"}),
			}).Create(&batch).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// GetLearnedWords returns all learned words for the language pair, most
// recently learned first.
func (r *Repository) GetLearnedWords(languagePair string) ([]entities.LearnedWord, error) {
	var words []entities.LearnedWord
	err := r.db.Where("language_pair = ?", languagePair).
		Order("learned_at DESC").Find(&words).Error
	return words, err
}

// DeleteLearnedWord removes one learned word and reports whether a row was
// actually deleted, distinguishing "not found" from a storage error.
func (r *Repository) DeleteLearnedWord(word, languagePair string) (bool, error) {
	result := r.db.Where("word = ? AND language_pair = ?", word, languagePair).
		Delete(&entities.LearnedWord{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CountLearnedWords returns the number of learned words for the language pair.
func (r *Repository) CountLearnedWords(languagePair string) (int64, error) {
	var count int64
	err := r.db.Model(&entities.LearnedWord{}).
		Where("language_pair = ?", languagePair).Count(&count).Error
	return count, err
}

// IsWordLearned reports whether the word has a learned record for the pair.
func (r *Repository) IsWordLearned(word, languagePair string) (bool, error) {
	var existing entities.LearnedWord
	err := r.db.Where("word = ? AND language_pair = ?", word, languagePair).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
