package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelimeci/kelimeci/internal/entities"
)

// ListStore defines database operations for custom word lists.
type ListStore interface {
	CreateWordList(name, languagePair string) (uint, bool)
	GetWordLists(languagePair string) ([]entities.WordList, error)
	GetWordListByName(name, languagePair string) (*entities.WordList, error)
	AddWordToList(listID uint, item entities.WordListItem) error
	GetWordsFromList(listID uint) ([]entities.WordListItem, error)
	RemoveWordFromList(listID uint, word string) (bool, error)
	DeleteWordList(listID uint) error
}

type ListsController struct {
	store ListStore
}

func NewListsController(store ListStore) *ListsController {
	return &ListsController{store: store}
}

// CreateList creates a new custom word list.
// POST /api/lists
func (lc *ListsController) CreateList(c *gin.Context) {
	var req struct {
		Name         string `json:"name" binding:"required"`
		LanguagePair string `json:"language_pair" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "name and language_pair are required")
		return
	}

	id, ok := lc.store.CreateWordList(req.Name, req.LanguagePair)
	if !ok {
		respondConflict(c, "a list with this name already exists")
		return
	}

	respondCreated(c, gin.H{"id": id, "name": req.Name, "language_pair": req.LanguagePair})
}

// GetLists returns all lists for a language pair.
// GET /api/lists?language_pair=en-tr
func (lc *ListsController) GetLists(c *gin.Context) {
	pair, ok := languagePairQuery(c)
	if !ok {
		return
	}

	lists, err := lc.store.GetWordLists(pair)
	if err != nil {
		respondInternalError(c, err, "get word lists")
		return
	}
	c.JSON(http.StatusOK, lists)
}

// GetListByName looks up one list by its name.
// GET /api/lists/by-name?name=Travel&language_pair=en-tr
func (lc *ListsController) GetListByName(c *gin.Context) {
	pair, ok := languagePairQuery(c)
	if !ok {
		return
	}
	name := c.Query("name")
	if name == "" {
		respondBadRequest(c, "name is required")
		return
	}

	list, err := lc.store.GetWordListByName(name, pair)
	if err != nil {
		respondInternalError(c, err, "get word list by name")
		return
	}
	if list == nil {
		respondNotFound(c, "word list")
		return
	}
	c.JSON(http.StatusOK, list)
}

// AddWord adds or refreshes one word in a list.
// POST /api/lists/:id/words
func (lc *ListsController) AddWord(c *gin.Context) {
	listID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Word    string         `json:"word" binding:"required"`
		Meaning string         `json:"meaning"`
		Example string         `json:"example"`
		Level   entities.Level `json:"level"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "word is required")
		return
	}

	item := entities.WordListItem{
		WordListID: listID,
		Word:       req.Word,
		Meaning:    req.Meaning,
		Example:    req.Example,
		Level:      req.Level,
	}
	if err := lc.store.AddWordToList(listID, item); err != nil {
		respondInternalError(c, err, "add word to list")
		return
	}

	respondCreated(c, item)
}

// GetWords returns a list's words in insertion order.
// GET /api/lists/:id/words
func (lc *ListsController) GetWords(c *gin.Context) {
	listID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	items, err := lc.store.GetWordsFromList(listID)
	if err != nil {
		respondInternalError(c, err, "get words from list")
		return
	}
	c.JSON(http.StatusOK, items)
}

// RemoveWord removes one word from a list.
// DELETE /api/lists/:id/words/:word
func (lc *ListsController) RemoveWord(c *gin.Context) {
	listID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	word := c.Param("word")

	removed, err := lc.store.RemoveWordFromList(listID, word)
	if err != nil {
		respondInternalError(c, err, "remove word from list")
		return
	}
	if !removed {
		respondNotFound(c, "word")
		return
	}

	respondSuccess(c, "word removed")
}

// DeleteList removes a list together with its words.
// DELETE /api/lists/:id
func (lc *ListsController) DeleteList(c *gin.Context) {
	listID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := lc.store.DeleteWordList(listID); err != nil {
		respondInternalError(c, err, "delete word list")
		return
	}

	respondSuccess(c, "list deleted")
}
