package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kelimeci/kelimeci/internal/database/exercises"
	"github.com/kelimeci/kelimeci/internal/entities"
)

// ExerciseStore defines database operations for exercise history and
// resumable checkpoints.
type ExerciseStore interface {
	SaveExerciseResult(result entities.ExerciseResult) (uint, bool)
	SaveExerciseDetails(exerciseID uint, records []entities.QuestionRecord, languagePair string) error
	GetExerciseDetails(exerciseID uint) ([]entities.QuestionRecord, error)
	GetExerciseResults(languagePair string) ([]entities.ExerciseResult, error)
	GetExerciseResultsWithDetails(languagePair string, limit, offset int) ([]exercises.ResultWithDetails, error)
	DeleteExerciseResult(exerciseID uint) error
	SaveUnfinishedExercise(checkpoint entities.UnfinishedExercise) error
	GetUnfinishedExercises(languagePair string) ([]entities.UnfinishedExercise, error)
	DeleteUnfinishedExercise(timestamp int64) error
}

type ExercisesController struct {
	store ExerciseStore
}

func NewExercisesController(store ExerciseStore) *ExercisesController {
	return &ExercisesController{store: store}
}

// SaveResult records a completed exercise, optionally with its
// question-by-question record.
// POST /api/exercises
func (ec *ExercisesController) SaveResult(c *gin.Context) {
	var req struct {
		Result    entities.ExerciseResult   `json:"result" binding:"required"`
		Questions []entities.QuestionRecord `json:"questions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "result is required")
		return
	}

	id, ok := ec.store.SaveExerciseResult(req.Result)
	if !ok {
		// The store already logged the failure.
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to save exercise result"})
		return
	}

	if len(req.Questions) > 0 {
		if err := ec.store.SaveExerciseDetails(id, req.Questions, req.Result.LanguagePair); err != nil {
			// The result row is already committed; report the partial failure.
			respondInternalError(c, err, "save exercise details")
			return
		}
	}

	respondCreated(c, gin.H{"id": id})
}

// GetResults returns the exercise history, most recent first.
// GET /api/exercises?language_pair=en-tr
func (ec *ExercisesController) GetResults(c *gin.Context) {
	pair, ok := languagePairQuery(c)
	if !ok {
		return
	}

	results, err := ec.store.GetExerciseResults(pair)
	if err != nil {
		respondInternalError(c, err, "get exercise results")
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetHistory returns a paginated exercise history with question records.
// GET /api/exercises/history?language_pair=en-tr&limit=20&offset=0
func (ec *ExercisesController) GetHistory(c *gin.Context) {
	pair, ok := languagePairQuery(c)
	if !ok {
		return
	}
	limit := parseIntQuery(c, "limit", 20)
	offset := parseIntQuery(c, "offset", 0)

	history, err := ec.store.GetExerciseResultsWithDetails(pair, limit, offset)
	if err != nil {
		respondInternalError(c, err, "get exercise history")
		return
	}
	c.JSON(http.StatusOK, history)
}

// GetDetails returns the question record of one exercise.
// GET /api/exercises/:id/details
func (ec *ExercisesController) GetDetails(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	questions, err := ec.store.GetExerciseDetails(id)
	if err != nil {
		respondInternalError(c, err, "get exercise details")
		return
	}
	if questions == nil {
		respondNotFound(c, "exercise details")
		return
	}
	c.JSON(http.StatusOK, questions)
}

// DeleteResult removes one exercise together with its details.
// DELETE /api/exercises/:id
func (ec *ExercisesController) DeleteResult(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ec.store.DeleteExerciseResult(id); err != nil {
		respondInternalError(c, err, "delete exercise result")
		return
	}

	respondSuccess(c, "exercise deleted")
}

// SaveCheckpoint stores or overwrites a resumable session checkpoint.
// POST /api/exercises/unfinished
func (ec *ExercisesController) SaveCheckpoint(c *gin.Context) {
	var checkpoint entities.UnfinishedExercise
	if err := c.ShouldBindJSON(&checkpoint); err != nil {
		respondBadRequest(c, "invalid checkpoint payload")
		return
	}
	if checkpoint.Timestamp == 0 {
		respondBadRequest(c, "timestamp is required")
		return
	}

	if err := ec.store.SaveUnfinishedExercise(checkpoint); err != nil {
		respondInternalError(c, err, "save checkpoint")
		return
	}

	respondCreated(c, gin.H{"timestamp": checkpoint.Timestamp})
}

// GetCheckpoints returns the checkpoints still inside the resume window.
// GET /api/exercises/unfinished?language_pair=en-tr
func (ec *ExercisesController) GetCheckpoints(c *gin.Context) {
	pair, ok := languagePairQuery(c)
	if !ok {
		return
	}

	checkpoints, err := ec.store.GetUnfinishedExercises(pair)
	if err != nil {
		respondInternalError(c, err, "get checkpoints")
		return
	}
	c.JSON(http.StatusOK, checkpoints)
}

// DeleteCheckpoint discards one checkpoint after resume or abandon.
// DELETE /api/exercises/unfinished/:timestamp
func (ec *ExercisesController) DeleteCheckpoint(c *gin.Context) {
	timestamp, err := strconv.ParseInt(c.Param("timestamp"), 10, 64)
	if err != nil {
		respondBadRequest(c, "invalid timestamp")
		return
	}

	if err := ec.store.DeleteUnfinishedExercise(timestamp); err != nil {
		respondInternalError(c, err, "delete checkpoint")
		return
	}

	respondSuccess(c, "checkpoint deleted")
}
