package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelimeci/kelimeci/internal/backup"
	"github.com/kelimeci/kelimeci/internal/config"
	"github.com/kelimeci/kelimeci/internal/database"
	"github.com/kelimeci/kelimeci/internal/database/exercises"
	"github.com/kelimeci/kelimeci/internal/database/learned"
	"github.com/kelimeci/kelimeci/internal/database/lists"
	"github.com/kelimeci/kelimeci/internal/database/settings"
	"github.com/kelimeci/kelimeci/internal/settingsstore"
)

// BackupCommand writes a backup document for one language pair.
type BackupCommand struct {
	LanguagePair string
	DatabasePath string
	OutputDir    string
}

func NewBackupCommand() *BackupCommand {
	return &BackupCommand{}
}

func (cmd *BackupCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("backup", flag.ExitOnError)

	fs.StringVar(&cmd.LanguagePair, "pair", "", "Language pair to back up, e.g. en-tr (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	fs.StringVar(&cmd.OutputDir, "output", config.DefaultBackupDir, "Directory to write the backup document into")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s backup -pair <pair> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Write a portable JSON backup of learned words, exercise history,\n")
		fmt.Fprintf(os.Stderr, "custom lists and settings for one language pair.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.LanguagePair == "" {
		return fmt.Errorf("required flag -pair not provided")
	}

	return nil
}

func (cmd *BackupCommand) Run() error {
	fmt.Println("Backup")
	fmt.Println("======")

	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	db, err := database.NewDatabase(absDBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	service := backup.NewService(
		learned.NewRepository(db.DB),
		exercises.NewRepository(db.DB),
		lists.NewRepository(db.DB),
		settingsstore.New(settings.NewRepository(db.DB)),
		cmd.OutputDir,
	)

	path, err := service.Backup(cmd.LanguagePair)
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	fmt.Printf("Backup written to %s\n", path)
	return nil
}
