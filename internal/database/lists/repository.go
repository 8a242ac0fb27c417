// Package lists provides database operations for user-created word lists.
//
// Lists are unique by (name, language pair) and own their items
// exclusively: deleting a list removes every item in it.
package lists

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/kelimeci/kelimeci/internal/entities"
)

// Repository handles all word-list database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new word-list repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateWordList creates a named list for the language pair. A name
// collision or any other storage failure yields (0, false) rather than an
// error; callers needing create-or-reuse semantics should check
// GetWordListByName first and branch.
func (r *Repository) CreateWordList(name, languagePair string) (uint, bool) {
	list := entities.WordList{
		Name:         name,
		LanguagePair: languagePair,
		CreatedAt:    time.Now(),
	}
	if err := r.db.Create(&list).Error; err != nil {
		log.Printf("Could not create word list %q (%s): %v", name, languagePair, err)
		return 0, false
	}
	return list.ID, true
}

// GetWordLists returns all lists for the language pair, newest first.
func (r *Repository) GetWordLists(languagePair string) ([]entities.WordList, error) {
	var lists []entities.WordList
	err := r.db.Where("language_pair = ?", languagePair).
		Order("created_at DESC").Find(&lists).Error
	return lists, err
}

// GetWordListByName looks a list up by its unique (name, language pair).
// Returns nil without error when no such list exists.
func (r *Repository) GetWordListByName(name, languagePair string) (*entities.WordList, error) {
	var list entities.WordList
	err := r.db.Where("name = ? AND language_pair = ?", name, languagePair).First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// AddWordToList upserts an item into a list: if the (list, word) pair
// already exists its meaning, example, level and timestamp are updated in
// place, making repeated adds idempotent.
func (r *Repository) AddWordToList(listID uint, item entities.WordListItem) error {
	var existing entities.WordListItem
	result := r.db.Where("word_list_id = ? AND word = ?", listID, item.Word).First(&existing)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		item.ID = 0
		item.WordListID = listID
		item.AddedAt = time.Now()
		return r.db.Create(&item).Error
	}
	if result.Error != nil {
		return result.Error
	}

	return r.db.Model(&existing).Updates(map[string]any{
		"meaning":  item.Meaning,
		"example":  item.Example,
		"level":    item.Level,
		"added_at": time.Now(),
	}).Error
}

// GetWordsFromList returns all items of a list in insertion order.
func (r *Repository) GetWordsFromList(listID uint) ([]entities.WordListItem, error) {
	var items []entities.WordListItem
	err := r.db.Where("word_list_id = ?", listID).
		Order("added_at ASC, id ASC").Find(&items).Error
	return items, err
}

// RemoveWordFromList removes one word from a list and reports whether a
// row was actually deleted.
func (r *Repository) RemoveWordFromList(listID uint, word string) (bool, error) {
	result := r.db.Where("word_list_id = ? AND word = ?", listID, word).
		Delete(&entities.WordListItem{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteWordList removes a list and all of its items. The cascade runs in
// one transaction so the items can never outlive their list.
func (r *Repository) DeleteWordList(listID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("word_list_id = ?", listID).Delete(&entities.WordListItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.WordList{}, listID).Error
	})
}
