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

// RestoreCommand replays a backup document into the local database.
type RestoreCommand struct {
	FilePath     string
	DatabasePath string
	Verbose      bool
}

func NewRestoreCommand() *RestoreCommand {
	return &RestoreCommand{}
}

func (cmd *RestoreCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("restore", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to the backup document (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "List every skipped item")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s restore -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Replay a backup document into the local database. Items that fail\n")
		fmt.Fprintf(os.Stderr, "to restore are skipped and reported; the rest is applied.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.FilePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}

	return nil
}

func (cmd *RestoreCommand) Run() error {
	fmt.Println("Restore")
	fmt.Println("=======")

	if _, err := os.Stat(cmd.FilePath); os.IsNotExist(err) {
		return fmt.Errorf("backup document not found: %s", cmd.FilePath)
	}

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
		filepath.Dir(cmd.FilePath),
	)

	result := service.Restore(cmd.FilePath, nil)
	if !result.Success {
		if len(result.Skipped) > 0 {
			return fmt.Errorf("restore failed: %s", result.Skipped[0].Reason)
		}
		return fmt.Errorf("restore failed")
	}

	fmt.Println("\n=== Restore Summary ===")
	fmt.Printf("Language pair: %s\n", result.LanguagePair)
	fmt.Printf("Skipped items: %d\n", len(result.Skipped))

	if cmd.Verbose && len(result.Skipped) > 0 {
		fmt.Println("\nSkipped:")
		for _, item := range result.Skipped {
			fmt.Printf("  [%s] %s: %s\n", item.Stage, item.Item, item.Reason)
		}
	}

	fmt.Println("\nRestore complete!")
	return nil
}
