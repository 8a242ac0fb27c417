package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelimeci/kelimeci/internal/entities"
)

// LearnedStore defines database operations for learned word tracking.
type LearnedStore interface {
	SaveLearnedWords(words []entities.LearnedWord, languagePair string) error
	GetLearnedWords(languagePair string) ([]entities.LearnedWord, error)
	DeleteLearnedWord(word, languagePair string) (bool, error)
	CountLearnedWords(languagePair string) (int64, error)
	IsWordLearned(word, languagePair string) (bool, error)
}

type LearnedController struct {
	store LearnedStore
}

func NewLearnedController(store LearnedStore) *LearnedController {
	return &LearnedController{store: store}
}

// GetLearnedWords returns all learned words, most recent first.
// GET /api/learned?language_pair=en-tr
func (lc *LearnedController) GetLearnedWords(c *gin.Context) {
	pair, ok := languagePairQuery(c)
	if !ok {
		return
	}

	words, err := lc.store.GetLearnedWords(pair)
	if err != nil {
		respondInternalError(c, err, "get learned words")
		return
	}
	c.JSON(http.StatusOK, words)
}

// SaveLearnedWords records a batch of words as learned.
// POST /api/learned
func (lc *LearnedController) SaveLearnedWords(c *gin.Context) {
	var req struct {
		LanguagePair string                 `json:"language_pair" binding:"required"`
		Words        []entities.LearnedWord `json:"words" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "language_pair and words are required")
		return
	}

	if err := lc.store.SaveLearnedWords(req.Words, req.LanguagePair); err != nil {
		respondInternalError(c, err, "save learned words")
		return
	}

	respondCreated(c, gin.H{"saved": len(req.Words)})
}

// DeleteLearnedWord removes one word from the learned set.
// DELETE /api/learned/:word?language_pair=en-tr
func (lc *LearnedController) DeleteLearnedWord(c *gin.Context) {
	pair, ok := languagePairQuery(c)
	if !ok {
		return
	}
	word := c.Param("word")

	deleted, err := lc.store.DeleteLearnedWord(word, pair)
	if err != nil {
		respondInternalError(c, err, "delete learned word")
		return
	}
	if !deleted {
		respondNotFound(c, "learned word")
		return
	}

	respondSuccess(c, "learned word deleted")
}

// CheckWord reports whether one word is marked as learned.
// GET /api/learned/check?word=ev&language_pair=en-tr
func (lc *LearnedController) CheckWord(c *gin.Context) {
	pair, ok := languagePairQuery(c)
	if !ok {
		return
	}
	word := c.Query("word")
	if word == "" {
		respondBadRequest(c, "word is required")
		return
	}

	learned, err := lc.store.IsWordLearned(word, pair)
	if err != nil {
		respondInternalError(c, err, "check learned word")
		return
	}
	c.JSON(http.StatusOK, gin.H{"word": word, "learned": learned})
}

// GetCount returns the number of learned words for a language pair.
// GET /api/learned/count?language_pair=en-tr
func (lc *LearnedController) GetCount(c *gin.Context) {
	pair, ok := languagePairQuery(c)
	if !ok {
		return
	}

	count, err := lc.store.CountLearnedWords(pair)
	if err != nil {
		respondInternalError(c, err, "count learned words")
		return
	}
	c.JSON(http.StatusOK, gin.H{"language_pair": pair, "count": count})
}
