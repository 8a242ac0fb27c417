// Package exercises provides database operations for exercise history and
// the unfinished-exercise journal.
//
// Every completed attempt is one append-only ExerciseResult row plus one
// ExerciseDetail row holding the serialized question-by-question record.
// In-progress sessions checkpoint into unfinished_exercises and can be
// resumed within a 24-hour window.
package exercises

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kelimeci/kelimeci/internal/entities"
)

// ResumeWindow is how long an interrupted session stays resumable.
const ResumeWindow = 24 * time.Hour

// ResultWithDetails pairs a result row with its decoded question records.
type ResultWithDetails struct {
	Result    entities.ExerciseResult   `json:"result"`
	Questions []entities.QuestionRecord `json:"questions,omitempty"`
}

// Repository handles exercise history and checkpoint database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new exercise repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// SaveExerciseResult appends one completed attempt and returns its id so
// the caller can attach details. Returns (0, false) on storage failure.
func (r *Repository) SaveExerciseResult(result entities.ExerciseResult) (uint, bool) {
	result.ID = 0
	if result.Date.IsZero() {
		result.Date = time.Now()
	}
	if err := r.db.Create(&result).Error; err != nil {
		log.Printf("Could not save exercise result (%s): %v", result.LanguagePair, err)
		return 0, false
	}
	return result.ID, true
}

// SaveExerciseDetails serializes the ordered question records of one
// attempt and stores them as a single row referencing the parent result.
func (r *Repository) SaveExerciseDetails(exerciseID uint, records []entities.QuestionRecord, languagePair string) error {
	blob, err := encodeDetails(records)
	if err != nil {
		return err
	}
	detail := entities.ExerciseDetail{
		ExerciseResultID: exerciseID,
		Details:          blob,
		LanguagePair:     languagePair,
	}
	return r.db.Create(&detail).Error
}

// GetExerciseDetails returns the decoded question records for one attempt,
// or nil when the attempt has no detail row.
func (r *Repository) GetExerciseDetails(exerciseID uint) ([]entities.QuestionRecord, error) {
	var detail entities.ExerciseDetail
	err := r.db.Where("exercise_result_id = ?", exerciseID).First(&detail).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeDetails(detail.Details)
}

// GetExerciseResults returns the lightweight history listing for browsing,
// most recent first, without detail blobs.
func (r *Repository) GetExerciseResults(languagePair string) ([]entities.ExerciseResult, error) {
	var results []entities.ExerciseResult
	err := r.db.Where("language_pair = ?", languagePair).
		Order("date DESC, id DESC").Find(&results).Error
	return results, err
}

// GetExerciseResultsWithDetails returns paginated history joined with the
// decoded detail records, most recent first. A result whose blob fails to
// decode is returned without questions rather than dropped.
func (r *Repository) GetExerciseResultsWithDetails(languagePair string, limit, offset int) ([]ResultWithDetails, error) {
	var results []entities.ExerciseResult
	q := r.db.Where("language_pair = ?", languagePair).Order("date DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return []ResultWithDetails{}, nil
	}

	ids := make([]uint, len(results))
	for i, res := range results {
		ids[i] = res.ID
	}
	var details []entities.ExerciseDetail
	if err := r.db.Where("exercise_result_id IN ?", ids).Find(&details).Error; err != nil {
		return nil, err
	}
	blobs := make(map[uint]string, len(details))
	for _, d := range details {
		blobs[d.ExerciseResultID] = d.Details
	}

	joined := make([]ResultWithDetails, len(results))
	for i, res := range results {
		joined[i] = ResultWithDetails{Result: res}
		if blob, ok := blobs[res.ID]; ok {
			questions, err := decodeDetails(blob)
			if err != nil {
				log.Printf("Could not decode details for exercise %d: %v", res.ID, err)
				continue
			}
			joined[i].Questions = questions
		}
	}
	return joined, nil
}

// DeleteExerciseResult removes one attempt and its detail row. The cascade
// runs in one transaction so a detail can never outlive its result.
func (r *Repository) DeleteExerciseResult(exerciseID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("exercise_result_id = ?", exerciseID).Delete(&entities.ExerciseDetail{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.ExerciseResult{}, exerciseID).Error
	})
}

// SaveUnfinishedExercise stores a resume checkpoint, replacing any prior
// checkpoint carrying the same timestamp.
func (r *Repository) SaveUnfinishedExercise(checkpoint entities.UnfinishedExercise) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "timestamp"}},
		UpdateAll: true,
	}).Create(&checkpoint).Error
}

// GetUnfinishedExercises returns resumable checkpoints for the language
// pair, most recent first. Checkpoints older than the resume window are
// ignored; PurgeExpiredCheckpoints removes them for good.
func (r *Repository) GetUnfinishedExercises(languagePair string) ([]entities.UnfinishedExercise, error) {
	cutoff := time.Now().Add(-ResumeWindow).UnixMilli()
	var checkpoints []entities.UnfinishedExercise
	err := r.db.Where("language_pair = ? AND timestamp >= ?", languagePair, cutoff).
		Order("timestamp DESC").Find(&checkpoints).Error
	return checkpoints, err
}

// DeleteUnfinishedExercise discards one checkpoint, typically on session
// completion.
func (r *Repository) DeleteUnfinishedExercise(timestamp int64) error {
	return r.db.Where("timestamp = ?", timestamp).Delete(&entities.UnfinishedExercise{}).Error
}

// PurgeExpiredCheckpoints deletes checkpoints older than the retention
// window across all language pairs and returns how many were removed.
// Without this the journal grows without bound over the life of an
// installation.
func (r *Repository) PurgeExpiredCheckpoints(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention).UnixMilli()
	result := r.db.Where("timestamp < ?", cutoff).Delete(&entities.UnfinishedExercise{})
	return result.RowsAffected, result.Error
}
