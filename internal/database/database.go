package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kelimeci/kelimeci/internal/entities"
)

// DefaultLegacyLanguagePair is assigned to rows copied out of databases
// created before tables were partitioned by language pair.
const DefaultLegacyLanguagePair = "en-tr"

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens (or creates) the SQLite database at dbPath and brings
// the schema to its latest shape. Legacy migrations run before AutoMigrate
// so constraint changes are applied to the old table shape, not the freshly
// migrated one. Any failure here is fatal for the session: callers must not
// construct repositories from a partially initialized schema.
func NewDatabase(dbPath string) (*Database, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_synchronous=NORMAL&_cache_size=-8000&_busy_timeout=5000&_foreign_keys=on", dbPath)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrateLegacySchema(db); err != nil {
		return nil, fmt.Errorf("failed to migrate legacy schema: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Word{},
		&entities.LearnedWord{},
		&entities.WordList{},
		&entities.WordListItem{},
		&entities.ExerciseResult{},
		&entities.ExerciseDetail{},
		&entities.UnfinishedExercise{},
		&entities.BackgroundImage{},
		&entities.Setting{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// migrateLegacySchema upgrades tables created by earlier application
// versions. All steps are guarded by live table/column inspection and are
// no-ops on a current or empty database, so running them on every start is
// safe.
func migrateLegacySchema(db *gorm.DB) error {
	if err := rebuildLearnedWordsTable(db); err != nil {
		return err
	}

	// Plain column additions never require a rebuild.
	if err := addColumnIfMissing(db, &entities.Word{}, "streak"); err != nil {
		return err
	}
	if err := addColumnIfMissing(db, &entities.ExerciseResult{}, "level"); err != nil {
		return err
	}
	return nil
}

// addColumnIfMissing issues an ALTER TABLE ADD COLUMN for a column an older
// schema version lacks. Existing data is never touched.
func addColumnIfMissing(db *gorm.DB, model any, column string) error {
	m := db.Migrator()
	if !m.HasTable(model) || m.HasColumn(model, column) {
		return nil
	}
	if err := m.AddColumn(model, column); err != nil {
		return fmt.Errorf("add column %s: %w", column, err)
	}
	log.Printf("Migration: added missing column %q", column)
	return nil
}

// rebuildLearnedWordsTable handles the one constraint change in the schema
// history: early versions kept learned_words unique on word alone, without
// a language pair. Changing uniqueness requires a copy-rebuild: create a
// shadow table with the new shape, copy rows supplying the default language
// pair, drop the old table and rename the shadow into place. The whole
// rewrite runs in one transaction so a crash mid-migration cannot leave the
// database without the table.
func rebuildLearnedWordsTable(db *gorm.DB) error {
	m := db.Migrator()
	if !m.HasTable("learned_words") || m.HasColumn(&entities.LearnedWord{}, "language_pair") {
		return nil
	}

	log.Printf("Migration: rebuilding learned_words with language_pair scoping")
	return db.Transaction(func(tx *gorm.DB) error {
		stmts := []string{
			`CREATE TABLE learned_words_new (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				word TEXT,
				meaning TEXT,
				example TEXT,
				level TEXT,
				language_pair TEXT,
				learned_at DATETIME
			)`,
			fmt.Sprintf(`INSERT INTO learned_words_new (id, word, meaning, example, level, language_pair, learned_at)
				SELECT id, word, meaning, example, level, '%s', learned_at FROM learned_words`, DefaultLegacyLanguagePair),
			`DROP TABLE learned_words`,
			`ALTER TABLE learned_words_new RENAME TO learned_words`,
		}
		for _, stmt := range stmts {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("rebuild learned_words: %w", err)
			}
		}
		return nil
	})
}
