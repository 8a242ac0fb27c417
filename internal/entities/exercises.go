package entities

import (
	"time"
)

// ExerciseType identifies the kind of exercise a result belongs to.
type ExerciseType string

const (
	ExerciseTypeMultipleChoice ExerciseType = "multiple_choice"
	ExerciseTypeWriting        ExerciseType = "writing"
	ExerciseTypeListening      ExerciseType = "listening"
	ExerciseTypeMatching       ExerciseType = "matching"
	ExerciseTypeMixed          ExerciseType = "mixed"
)

// ExerciseResult is one completed exercise attempt. Rows are append-only;
// the per-question record is stored separately in ExerciseDetail.
type ExerciseResult struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	ExerciseType   ExerciseType `gorm:"size:32" json:"exercise_type"`
	Score          int          `json:"score"`
	TotalQuestions int          `json:"total_questions"`
	Date           time.Time    `gorm:"index" json:"date"`
	LanguagePair   string       `gorm:"size:16;index" json:"language_pair"`
	WordSource     WordSource   `gorm:"size:32" json:"word_source"`
	Level          Level        `gorm:"size:8" json:"level,omitempty"`
	WordListID     *uint        `json:"word_list_id,omitempty"`
	WordListName   string       `gorm:"size:256" json:"word_list_name,omitempty"`
}

func (ExerciseResult) TableName() string {
	return "exercise_results"
}

// ExerciseDetail holds the serialized question-by-question record of one
// exercise attempt. One row per result; removed when the result is deleted.
type ExerciseDetail struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	ExerciseResultID uint           `gorm:"index" json:"exercise_result_id"`
	Details          string         `gorm:"type:text" json:"details"` // versioned JSON blob, see QuestionRecord
	LanguagePair     string         `gorm:"size:16;index" json:"language_pair"`
	ExerciseResult   ExerciseResult `gorm:"foreignKey:ExerciseResultID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ExerciseDetail) TableName() string {
	return "exercise_details"
}

// QuestionType tags the variant of a QuestionRecord inside a detail blob.
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeWriting        QuestionType = "writing"
	QuestionTypeListening      QuestionType = "listening"
	QuestionTypeMatching       QuestionType = "matching"
)

// QuestionRecord is one question outcome inside an exercise detail blob.
// Fields not used by a given question type are left empty.
type QuestionRecord struct {
	Type          QuestionType `json:"type"`
	Question      string       `json:"question"`
	Options       []string     `json:"options,omitempty"`
	UserAnswer    string       `json:"user_answer"`
	CorrectAnswer string       `json:"correct_answer"`
	IsCorrect     bool         `json:"is_correct"`
}

// UnfinishedExercise is a resumable checkpoint of an in-progress session,
// keyed by the caller-supplied timestamp. Saving with the same timestamp
// overwrites the previous checkpoint.
type UnfinishedExercise struct {
	Timestamp      int64        `gorm:"primaryKey;autoIncrement:false" json:"timestamp"` // unix millis
	LanguagePair   string       `gorm:"size:16;index" json:"language_pair"`
	ExerciseType   ExerciseType `gorm:"size:32" json:"exercise_type"`
	QuestionIndex  int          `json:"question_index"`
	TotalQuestions int          `json:"total_questions"`
	Score          int          `json:"score"`
	AskedWords     string       `gorm:"type:text" json:"asked_words"`      // JSON array of words already asked
	Details        string       `gorm:"type:text" json:"question_details"` // versioned JSON blob, see QuestionRecord
	WordSource     WordSource   `gorm:"size:32" json:"word_source"`
	Level          Level        `gorm:"size:8" json:"level,omitempty"`
	WordListID     *uint        `json:"word_list_id,omitempty"`
	WordListName   string       `gorm:"size:256" json:"word_list_name,omitempty"`
	PreviousType   ExerciseType `gorm:"size:32" json:"previous_type,omitempty"`
}

func (UnfinishedExercise) TableName() string {
	return "unfinished_exercises"
}
