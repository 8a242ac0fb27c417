package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Create controllers with appropriate interfaces
	health := NewHealthController(cfg.Database, cfg.Version)
	wordsController := NewWordsController(cfg.Dictionary)
	learnedController := NewLearnedController(cfg.Learned)
	listsController := NewListsController(cfg.Lists)
	exercisesController := NewExercisesController(cfg.Exercises)
	imagesController := NewImagesController(cfg.Images, cfg.ImageCache)
	settingsController := NewSettingsController(cfg.SettingsStore)
	backupController := NewBackupController(cfg.BackupService, cfg.AuditService)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Dictionary endpoints
	router.GET("/api/words", wordsController.GetWords)
	router.POST("/api/words", wordsController.SaveWords)
	router.GET("/api/words/practice", wordsController.GetPracticeWords)
	router.GET("/api/words/search", wordsController.SearchWords)
	router.POST("/api/words/streak", wordsController.UpdateStreak)
	router.GET("/api/words/streaks", wordsController.GetStreaks)
	router.GET("/api/words/streaks/stats", wordsController.GetStreakStats)
	router.GET("/api/words/status", wordsController.GetStatus)

	// Learned word endpoints
	router.GET("/api/learned", learnedController.GetLearnedWords)
	router.POST("/api/learned", learnedController.SaveLearnedWords)
	router.GET("/api/learned/check", learnedController.CheckWord)
	router.GET("/api/learned/count", learnedController.GetCount)
	router.DELETE("/api/learned/:word", learnedController.DeleteLearnedWord)

	// Custom word list endpoints
	router.POST("/api/lists", listsController.CreateList)
	router.GET("/api/lists", listsController.GetLists)
	router.GET("/api/lists/by-name", listsController.GetListByName)
	router.POST("/api/lists/:id/words", listsController.AddWord)
	router.GET("/api/lists/:id/words", listsController.GetWords)
	router.DELETE("/api/lists/:id/words/:word", listsController.RemoveWord)
	router.DELETE("/api/lists/:id", listsController.DeleteList)

	// Exercise history and checkpoint endpoints
	router.POST("/api/exercises", exercisesController.SaveResult)
	router.GET("/api/exercises", exercisesController.GetResults)
	router.GET("/api/exercises/history", exercisesController.GetHistory)
	router.POST("/api/exercises/unfinished", exercisesController.SaveCheckpoint)
	router.GET("/api/exercises/unfinished", exercisesController.GetCheckpoints)
	router.DELETE("/api/exercises/unfinished/:timestamp", exercisesController.DeleteCheckpoint)
	router.GET("/api/exercises/:id/details", exercisesController.GetDetails)
	router.DELETE("/api/exercises/:id", exercisesController.DeleteResult)

	// Background image endpoints
	router.GET("/api/images", imagesController.GetImages)
	router.GET("/api/images/background", imagesController.GetBackground)
	router.POST("/api/images/cache/clear", imagesController.ClearCache)

	// Settings endpoints
	router.GET("/api/settings/:key", settingsController.GetSetting)
	router.PUT("/api/settings/:key", settingsController.SetSetting)
	router.DELETE("/api/settings/:key", settingsController.DeleteSetting)

	// Backup and restore endpoints
	router.POST("/api/backup", backupController.CreateBackup)
	router.POST("/api/restore", backupController.Restore)

	// Word source sync endpoints
	if cfg.Loader != nil {
		syncController := NewSyncController(cfg.Loader, cfg.AuditService)
		router.POST("/api/sync/words", syncController.SyncWords)
		router.POST("/api/sync/images", syncController.SyncImages)
	}

	// Task management endpoints
	if cfg.TaskClient != nil {
		tasksController := NewTasksController(cfg.TaskClient, cfg.Config)
		router.GET("/api/tasks/types", tasksController.ListTaskTypes)
		router.GET("/api/tasks/status/:id", tasksController.GetTaskStatus)
		router.POST("/api/tasks/:type/run", tasksController.RunTask)
	}

	return router
}
