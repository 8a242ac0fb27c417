package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelimeci/kelimeci/internal/database/dictionary"
	"github.com/kelimeci/kelimeci/internal/entities"
)

// DictionaryStore defines database operations for the word dictionary.
type DictionaryStore interface {
	SaveWords(words []dictionary.WordInput, level entities.Level, languagePair string) error
	GetWords(level entities.Level, languagePair string) ([]entities.Word, error)
	GetAllWords(languagePair string, limit, offset int) ([]entities.Word, error)
	SearchWords(query, languagePair string, limit, offset int) ([]entities.Word, error)
	SearchWordsByQueryAndLevel(query string, level entities.Level, languagePair string, limit, offset int) ([]entities.Word, error)
	IncrementWordStreak(word string, level entities.Level, languagePair string) error
	DecrementWordStreak(word string, level entities.Level, languagePair string) error
	ResetWordStreak(word string, level entities.Level, languagePair string) error
	GetWordsWithStreaks(languagePair string) ([]entities.Word, error)
	GetStreakStatistics(languagePair string) (*dictionary.StreakStatistics, error)
	IsLanguageDataLoaded(languagePair string) (bool, error)
	CountWords(languagePair string) (int64, error)
}

type WordsController struct {
	store DictionaryStore
}

func NewWordsController(store DictionaryStore) *WordsController {
	return &WordsController{store: store}
}

// GetWords returns the words of one difficulty level.
// GET /api/words?language_pair=en-tr&level=B1
func (wc *WordsController) GetWords(c *gin.Context) {
	pair, ok := languagePairQuery(c)
	if !ok {
		return
	}
	level := entities.Level(c.Query("level"))
	if level == "" {
		respondBadRequest(c, "level is required")
		return
	}

	words, err := wc.store.GetWords(level, pair)
	if err != nil {
		respondInternalError(c, err, "get words")
		return
	}
	c.JSON(http.StatusOK, words)
}

// GetPracticeWords returns a level-balanced random selection of words.
// GET /api/words/practice?language_pair=en-tr&limit=30
func (wc *WordsController) GetPracticeWords(c *gin.Context) {
	pair, ok := languagePairQuery(c)
	if !ok {
		return
	}
	limit := parseIntQuery(c, "limit", 30)
	offset := parseIntQuery(c, "offset", 0)

	words, err := wc.store.GetAllWords(pair, limit, offset)
	if err != nil {
		respondInternalError(c, err, "get practice words")
		return
	}
	c.JSON(http.StatusOK, words)
}

// SaveWords loads a batch of words for one level.
// POST /api/words
func (wc *WordsController) SaveWords(c *gin.Context) {
	var req struct {
		Level        entities.Level         `json:"level" binding:"required"`
		LanguagePair string                 `json:"language_pair" binding:"required"`
		Words        []dictionary.WordInput `json:"words" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "level, language_pair and words are required")
		return
	}

	if err := wc.store.SaveWords(req.Words, req.Level, req.LanguagePair); err != nil {
		respondInternalError(c, err, "save words")
		return
	}

	respondCreated(c, gin.H{"saved": len(req.Words)})
}

// SearchWords searches the dictionary, optionally scoped to one level.
// GET /api/words/search?q=ev&language_pair=en-tr&level=A1
func (wc *WordsController) SearchWords(c *gin.Context) {
	pair, ok := languagePairQuery(c)
	if !ok {
		return
	}
	query := c.Query("q")
	if query == "" {
		respondBadRequest(c, "q is required")
		return
	}
	limit := parseIntQuery(c, "limit", 50)
	offset := parseIntQuery(c, "offset", 0)

	var (
		words []entities.Word
		err   error
	)
	if level := entities.Level(c.Query("level")); level != "" {
		words, err = wc.store.SearchWordsByQueryAndLevel(query, level, pair, limit, offset)
	} else {
		words, err = wc.store.SearchWords(query, pair, limit, offset)
	}
	if err != nil {
		respondInternalError(c, err, "search words")
		return
	}
	c.JSON(http.StatusOK, words)
}

// UpdateStreak adjusts the answer streak of one word.
// POST /api/words/streak
func (wc *WordsController) UpdateStreak(c *gin.Context) {
	var req struct {
		Word         string         `json:"word" binding:"required"`
		Level        entities.Level `json:"level" binding:"required"`
		LanguagePair string         `json:"language_pair" binding:"required"`
		Action       string         `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "word, level, language_pair and action are required")
		return
	}

	var err error
	switch req.Action {
	case "increment":
		err = wc.store.IncrementWordStreak(req.Word, req.Level, req.LanguagePair)
	case "decrement":
		err = wc.store.DecrementWordStreak(req.Word, req.Level, req.LanguagePair)
	case "reset":
		err = wc.store.ResetWordStreak(req.Word, req.Level, req.LanguagePair)
	default:
		respondBadRequest(c, "action must be increment, decrement or reset")
		return
	}
	if err != nil {
		respondInternalError(c, err, "update word streak")
		return
	}

	respondSuccess(c, "streak updated")
}

// GetStreaks returns all words with an active streak.
// GET /api/words/streaks?language_pair=en-tr
func (wc *WordsController) GetStreaks(c *gin.Context) {
	pair, ok := languagePairQuery(c)
	if !ok {
		return
	}

	words, err := wc.store.GetWordsWithStreaks(pair)
	if err != nil {
		respondInternalError(c, err, "get streaks")
		return
	}
	c.JSON(http.StatusOK, words)
}

// GetStreakStats returns aggregate streak statistics.
// GET /api/words/streaks/stats?language_pair=en-tr
func (wc *WordsController) GetStreakStats(c *gin.Context) {
	pair, ok := languagePairQuery(c)
	if !ok {
		return
	}

	stats, err := wc.store.GetStreakStatistics(pair)
	if err != nil {
		respondInternalError(c, err, "get streak statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetStatus reports whether a language pair has dictionary data loaded.
// GET /api/words/status?language_pair=en-tr
func (wc *WordsController) GetStatus(c *gin.Context) {
	pair, ok := languagePairQuery(c)
	if !ok {
		return
	}

	loaded, err := wc.store.IsLanguageDataLoaded(pair)
	if err != nil {
		respondInternalError(c, err, "check language data")
		return
	}
	count, err := wc.store.CountWords(pair)
	if err != nil {
		respondInternalError(c, err, "count words")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"language_pair": pair,
		"loaded":        loaded,
		"word_count":    count,
	})
}
