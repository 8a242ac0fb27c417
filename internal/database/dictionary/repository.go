// Package dictionary provides database operations for the canonical word
// dictionary.
//
// The dictionary is loaded in bulk from a remote level-keyed word source
// and scoped by (word, level, language pair). Per-word streak counters
// track consecutive correct exercise answers.
//
// # Usage
//
//	repo := dictionary.NewRepository(db)
//	err := repo.SaveWords(words, entities.LevelA1, "en-tr")
//	sample, err := repo.GetAllWords("en-tr", 30, 0)
package dictionary

import (
	"math/rand/v2"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kelimeci/kelimeci/internal/entities"
)

// saveBatchSize bounds the row count of a single INSERT so one statement
// stays within SQLite's parameter limits and memory stays bounded during
// large remote loads.
const saveBatchSize = 500

// WordInput is one entry of a bulk dictionary load, before level and
// language pair are applied.
type WordInput struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
	Example string `json:"example,omitempty"`
}

// StreakStatistics summarizes streak counters for one language pair.
type StreakStatistics struct {
	TotalWords    int64       `json:"total_words"`
	WordsOnStreak int64       `json:"words_on_streak"`
	AverageStreak float64     `json:"average_streak"`
	Histogram     map[int]int `json:"histogram"`
}

// Repository handles all dictionary database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new dictionary repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// SaveWords bulk-loads words for one level and language pair. Rows that
// collide with an existing (word, level, language_pair) are silently
// ignored. The input is split into batches but the whole load runs in a
// single transaction, so a failure rolls back every batch. Empty input is
// a no-op.
func (r *Repository) SaveWords(words []WordInput, level entities.Level, languagePair string) error {
	if len(words) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]entities.Word, len(words))
	for i, w := range words {
		rows[i] = entities.Word{
			Word:         w.Word,
			Meaning:      w.Meaning,
			Example:      w.Example,
			Level:        level,
			LanguagePair: languagePair,
			CreatedAt:    now,
		}
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		for start := 0; start < len(rows); start += saveBatchSize {
			end := min(start+saveBatchSize, len(rows))
			batch := rows[start:end]
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&batch).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetWords returns all words for an exact level and language pair.
func (r *Repository) GetWords(level entities.Level, languagePair string) ([]entities.Word, error) {
	var words []entities.Word
	err := r.db.Where("level = ? AND language_pair = ?", level, languagePair).
		Order("word ASC").Find(&words).Error
	return words, err
}

// GetAllWords returns up to limit words sampled fairly across the levels
// present for the language pair: each level contributes an equal share of
// randomly ordered rows, the shares are reshuffled together and truncated.
// A naive LIMIT would bias toward whichever level sorts first.
func (r *Repository) GetAllWords(languagePair string, limit, offset int) ([]entities.Word, error) {
	if limit <= 0 {
		return []entities.Word{}, nil
	}

	var levels []entities.Level
	err := r.db.Model(&entities.Word{}).Distinct("level").
		Where("language_pair = ?", languagePair).Order("level ASC").
		Pluck("level", &levels).Error
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return []entities.Word{}, nil
	}

	share := limit / len(levels)
	remainder := limit % len(levels)

	combined := make([]entities.Word, 0, limit)
	for i, level := range levels {
		perLevel := share
		if i < remainder {
			perLevel++
		}
		if perLevel == 0 {
			continue
		}

		var words []entities.Word
		q := r.db.Where("level = ? AND language_pair = ?", level, languagePair).
			Order("RANDOM()").Limit(perLevel)
		if offset > 0 {
			q = q.Offset(offset)
		}
		if err := q.Find(&words).Error; err != nil {
			return nil, err
		}
		combined = append(combined, words...)
	}

	rand.Shuffle(len(combined), func(i, j int) {
		combined[i], combined[j] = combined[j], combined[i]
	})
	if len(combined) > limit {
		combined = combined[:limit]
	}
	return combined, nil
}

// SearchWords performs a case-insensitive substring search over word and
// meaning, paginated and ordered by level then word for stable paging.
func (r *Repository) SearchWords(query, languagePair string, limit, offset int) ([]entities.Word, error) {
	return r.search(query, "", languagePair, limit, offset)
}

// SearchWordsByLevel returns all words of one level matching the query.
func (r *Repository) SearchWordsByLevel(query string, level entities.Level, languagePair string, limit, offset int) ([]entities.Word, error) {
	return r.search(query, level, languagePair, limit, offset)
}

// SearchWordsByQueryAndLevel narrows SearchWords by level when one is
// given; an empty level searches every level.
func (r *Repository) SearchWordsByQueryAndLevel(query string, level entities.Level, languagePair string, limit, offset int) ([]entities.Word, error) {
	return r.search(query, level, languagePair, limit, offset)
}

func (r *Repository) search(query string, level entities.Level, languagePair string, limit, offset int) ([]entities.Word, error) {
	var words []entities.Word
	searchPattern := "%" + query + "%"
	q := r.db.Where("language_pair = ?", languagePair).
		Where("LOWER(word) LIKE LOWER(?) OR LOWER(meaning) LIKE LOWER(?)", searchPattern, searchPattern)
	if level != "" {
		q = q.Where("level = ?", level)
	}
	q = q.Order("level ASC, word ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	err := q.Find(&words).Error
	return words, err
}

// IncrementWordStreak raises the streak counter for one word.
func (r *Repository) IncrementWordStreak(word string, level entities.Level, languagePair string) error {
	return r.db.Model(&entities.Word{}).
		Where("word = ? AND level = ? AND language_pair = ?", word, level, languagePair).
		UpdateColumn("streak", gorm.Expr("streak + 1")).Error
}

// DecrementWordStreak lowers the streak counter for one word, flooring at
// zero no matter how many times it is called.
func (r *Repository) DecrementWordStreak(word string, level entities.Level, languagePair string) error {
	return r.db.Model(&entities.Word{}).
		Where("word = ? AND level = ? AND language_pair = ? AND streak > 0", word, level, languagePair).
		UpdateColumn("streak", gorm.Expr("streak - 1")).Error
}

// ResetWordStreak sets the streak counter for one word back to zero.
func (r *Repository) ResetWordStreak(word string, level entities.Level, languagePair string) error {
	return r.db.Model(&entities.Word{}).
		Where("word = ? AND level = ? AND language_pair = ?", word, level, languagePair).
		UpdateColumn("streak", 0).Error
}

// GetWordsWithStreaks returns words with an active streak, best first.
func (r *Repository) GetWordsWithStreaks(languagePair string) ([]entities.Word, error) {
	var words []entities.Word
	err := r.db.Where("language_pair = ? AND streak > 0", languagePair).
		Order("streak DESC, word ASC").Find(&words).Error
	return words, err
}

// GetStreakStatistics returns streak counts, the average streak and a
// streak-value histogram for one language pair.
func (r *Repository) GetStreakStatistics(languagePair string) (*StreakStatistics, error) {
	stats := &StreakStatistics{Histogram: make(map[int]int)}

	err := r.db.Model(&entities.Word{}).Where("language_pair = ?", languagePair).
		Count(&stats.TotalWords).Error
	if err != nil {
		return nil, err
	}
	err = r.db.Model(&entities.Word{}).
		Where("language_pair = ? AND streak > 0", languagePair).
		Count(&stats.WordsOnStreak).Error
	if err != nil {
		return nil, err
	}

	if stats.TotalWords > 0 {
		var avg *float64
		err = r.db.Model(&entities.Word{}).Where("language_pair = ?", languagePair).
			Select("AVG(streak)").Scan(&avg).Error
		if err != nil {
			return nil, err
		}
		if avg != nil {
			stats.AverageStreak = *avg
		}
	}

	rows, err := r.db.Model(&entities.Word{}).
		Select("streak, COUNT(*) as count").
		Where("language_pair = ?", languagePair).
		Group("streak").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var streak, count int
		if err := rows.Scan(&streak, &count); err != nil {
			return nil, err
		}
		stats.Histogram[streak] = count
	}
	return stats, rows.Err()
}

// IsLanguageDataLoaded reports whether any dictionary data exists for the
// language pair; callers use it to decide whether a first-time bulk
// download is required.
func (r *Repository) IsLanguageDataLoaded(languagePair string) (bool, error) {
	count, err := r.CountWords(languagePair)
	return count > 0, err
}

// CountWords returns the number of dictionary rows for the language pair.
func (r *Repository) CountWords(languagePair string) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Word{}).Where("language_pair = ?", languagePair).
		Count(&count).Error
	return count, err
}
