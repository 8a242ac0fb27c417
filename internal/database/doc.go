// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, pragmas, schema migrations
//	├── dictionary/      # Canonical dictionary words, search, streaks
//	├── learned/         # Per-user learned-word records
//	├── lists/           # Custom word lists and their items
//	├── exercises/       # Exercise history, details, resume checkpoints
//	├── images/          # Background-image cache index
//	└── settings/        # Key-value application settings
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection (runs all migrations)
//	db, err := database.NewDatabase("./kelimeci.db")
//
//	// Create domain-specific repositories
//	dictRepo := dictionary.NewRepository(db.DB)
//	listsRepo := lists.NewRepository(db.DB)
//
//	// Use repositories
//	words, err := dictRepo.GetWords(entities.LevelA1, "en-tr")
//	id, ok := listsRepo.CreateWordList("Animals", "en-tr")
//
// Nearly every table is partitioned by a language pair key of the form
// "<learning>-<native>" (e.g. "en-tr"); repositories filter by it on every
// query. The background-image index and settings table are global.
//
// # Error Conventions
//
// Repositories convert storage errors into return-value conventions rather
// than propagating them: creations that can collide return a zero id and
// false, deletions report whether a row was actually removed, and bulk
// writes roll back entirely on any failure. Initialization errors from
// NewDatabase are the exception and are always fatal.
//
// # Adding a New Domain
//
// To add a new domain (e.g. pronunciation):
//
//  1. Create a new sub-package: internal/database/pronunciation/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Register new entities in database.NewDatabase's AutoMigrate call
package database
