package entities

import (
	"time"
)

// Level is a CEFR difficulty level attached to dictionary words.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// WordSource describes which pool an exercise drew its questions from.
type WordSource string

const (
	WordSourceDictionary WordSource = "dictionary"
	WordSourceLearned    WordSource = "learned"
	WordSourceWordList   WordSource = "word_list"
)

// Word is a canonical dictionary entry, scoped by (word, level, language_pair).
// The language pair has the form "<learning>-<native>", e.g. "en-tr".
type Word struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Word         string    `gorm:"size:256;uniqueIndex:idx_words_identity" json:"word"`
	Meaning      string    `gorm:"type:text" json:"meaning"`
	Example      string    `gorm:"type:text" json:"example,omitempty"`
	Level        Level     `gorm:"size:8;uniqueIndex:idx_words_identity" json:"level"`
	LanguagePair string    `gorm:"size:16;index;uniqueIndex:idx_words_identity" json:"language_pair"`
	Streak       int       `gorm:"default:0" json:"streak"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Word) TableName() string {
	return "words"
}

// LearnedWord is a word the user has marked as learned, scoped by
// (word, language_pair). Re-saving replaces the existing row.
type LearnedWord struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Word         string    `gorm:"size:256;uniqueIndex:idx_learned_identity" json:"word"`
	Meaning      string    `gorm:"type:text" json:"meaning"`
	Example      string    `gorm:"type:text" json:"example,omitempty"`
	Level        Level     `gorm:"size:8" json:"level,omitempty"`
	LanguagePair string    `gorm:"size:16;index;uniqueIndex:idx_learned_identity" json:"language_pair"`
	LearnedAt    time.Time `json:"learned_at"`
}

func (LearnedWord) TableName() string {
	return "learned_words"
}

// WordList is a user-created named word collection for one language pair.
// Deleting a list cascades to its items.
type WordList struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"size:256;uniqueIndex:idx_word_lists_name" json:"name"`
	LanguagePair string         `gorm:"size:16;index;uniqueIndex:idx_word_lists_name" json:"language_pair"`
	CreatedAt    time.Time      `json:"created_at"`
	Items        []WordListItem `gorm:"foreignKey:WordListID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (WordList) TableName() string {
	return "word_lists"
}

// WordListItem is a word inside a WordList, unique per (word_list_id, word).
type WordListItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	WordListID uint      `gorm:"index;uniqueIndex:idx_word_list_items_word" json:"word_list_id"`
	Word       string    `gorm:"size:256;uniqueIndex:idx_word_list_items_word" json:"word"`
	Meaning    string    `gorm:"type:text" json:"meaning"`
	Example    string    `gorm:"type:text" json:"example,omitempty"`
	Level      Level     `gorm:"size:8" json:"level,omitempty"`
	AddedAt    time.Time `json:"added_at"`
}

func (WordListItem) TableName() string {
	return "word_list_items"
}
