package http

import (
	"github.com/kelimeci/kelimeci/internal/audit"
	"github.com/kelimeci/kelimeci/internal/backup"
	"github.com/kelimeci/kelimeci/internal/config"
	"github.com/kelimeci/kelimeci/internal/database"
	"github.com/kelimeci/kelimeci/internal/imagecache"
	"github.com/kelimeci/kelimeci/internal/settingsstore"
	"github.com/kelimeci/kelimeci/internal/tasks"
	"github.com/kelimeci/kelimeci/internal/wordsource"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router. This replaces the long parameter list
// in NewRouter for better maintainability.
type RouterConfig struct {
	// Core dependencies
	Database *database.Database
	Config   *config.Config

	// Per-concern stores
	Dictionary DictionaryStore
	Learned    LearnedStore
	Lists      ListStore
	Exercises  ExerciseStore
	Images     ImageStore

	// Settings
	SettingsStore *settingsstore.SettingsStore

	// Backup / restore
	BackupService *backup.Service

	// Word source sync (optional)
	Loader *wordsource.Loader

	// Image cache (optional)
	ImageCache *imagecache.Cache

	// Audit trail (optional)
	AuditService *audit.Service

	// Task queue client (optional)
	TaskClient *tasks.Client

	// Application info
	Version string
}
