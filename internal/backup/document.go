package backup

import (
	"fmt"

	"github.com/kelimeci/kelimeci/internal/entities"
)

// DocumentVersion is the current backup document format version.
const DocumentVersion = "1.0"

// Document is the portable backup of one language pair's data. A document
// missing any of Version, Timestamp or LanguagePair is rejected on restore
// before a single row is written.
type Document struct {
	Version      string `json:"version"`
	ID           string `json:"id,omitempty"`
	Timestamp    string `json:"timestamp"` // ISO-8601
	LanguagePair string `json:"languagePair"`

	LearnedWords    []entities.LearnedWord    `json:"learnedWords"`
	ExerciseResults []entities.ExerciseResult `json:"exerciseResults"`
	// Each detail entry is tagged with the exercise id it belonged to in
	// the source database; restore re-links it to the freshly created row.
	ExerciseDetails []ExerciseDetailEntry `json:"exerciseDetails"`
	CustomWordLists []entities.WordList   `json:"customWordLists"`
	// Items grouped by the source database's list id (decimal string keys).
	CustomWordListItems map[string][]entities.WordListItem `json:"customWordListItems"`
	Settings            map[string]any                     `json:"settings"`
}

// ExerciseDetailEntry carries one attempt's question records through a
// backup document.
type ExerciseDetailEntry struct {
	ExerciseID   uint                      `json:"exerciseId"`
	Questions    []entities.QuestionRecord `json:"questions"`
	LanguagePair string                    `json:"languagePair"`
}

// Validate checks the required top-level fields. Restore fails closed on
// any of them missing rather than guessing.
func (d *Document) Validate() error {
	if d.Version == "" {
		return fmt.Errorf("backup document missing version")
	}
	if d.Timestamp == "" {
		return fmt.Errorf("backup document missing timestamp")
	}
	if d.LanguagePair == "" {
		return fmt.Errorf("backup document missing language pair")
	}
	return nil
}

// SkippedItem names one item dropped during best-effort restore replay.
type SkippedItem struct {
	Stage  string `json:"stage"` // "learned_words", "exercise_results", "word_lists", "settings"
	Item   string `json:"item"`
	Reason string `json:"reason"`
}

// RestoreResult reports a restore outcome. Success reflects the top-level
// replay only; per-item failures land in Skipped instead of flipping it.
type RestoreResult struct {
	Success      bool          `json:"success"`
	LanguagePair string        `json:"languagePair,omitempty"`
	Skipped      []SkippedItem `json:"skipped,omitempty"`
}
