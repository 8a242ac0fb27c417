package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/kelimeci/kelimeci/internal/config"
	"github.com/kelimeci/kelimeci/internal/database"
	"github.com/kelimeci/kelimeci/internal/database/dictionary"
	"github.com/kelimeci/kelimeci/internal/entities"
	"github.com/kelimeci/kelimeci/internal/wordsource"
)

// ImportWordsCommand loads a level-keyed word document into the dictionary
// from a local file or a remote URL.
type ImportWordsCommand struct {
	FilePath     string
	URL          string
	LanguagePair string
	DatabasePath string
	Verbose      bool
	DryRun       bool
}

func NewImportWordsCommand() *ImportWordsCommand {
	return &ImportWordsCommand{}
}

func (cmd *ImportWordsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import-words", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to a level-keyed word document (JSON)")
	fs.StringVar(&cmd.URL, "url", "", "URL of a level-keyed word document (JSON)")
	fs.StringVar(&cmd.LanguagePair, "pair", "", "Language pair to import into, e.g. en-tr (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Show what would be imported without making changes")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import-words -pair <pair> (-file <path> | -url <url>) [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import a level-keyed word document into the local dictionary.\n\n")
		fmt.Fprintf(os.Stderr, "The document maps difficulty levels to word entries:\n")
		fmt.Fprintf(os.Stderr, "  {\"A1\": [{\"word\": ..., \"meaning\": ..., \"example\": ...}], ...}\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Import from a local file:\n")
		fmt.Fprintf(os.Stderr, "  %s import-words -pair en-tr -file words.json\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Preview a remote document:\n")
		fmt.Fprintf(os.Stderr, "  %s import-words -pair en-tr -url https://example.com/words.json -dry-run\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.LanguagePair == "" {
		return fmt.Errorf("required flag -pair not provided")
	}
	if cmd.FilePath == "" && cmd.URL == "" {
		return fmt.Errorf("one of -file or -url is required")
	}
	if cmd.FilePath != "" && cmd.URL != "" {
		return fmt.Errorf("-file and -url are mutually exclusive")
	}

	return nil
}

func (cmd *ImportWordsCommand) Run() error {
	fmt.Println("Word Import")
	fmt.Println("===========")

	if cmd.DryRun {
		fmt.Println("DRY RUN MODE - No changes will be made")
		fmt.Println()
	}

	doc, err := cmd.loadDocument()
	if err != nil {
		return err
	}

	levels := make([]entities.Level, 0, len(doc))
	total := 0
	for level, words := range doc {
		levels = append(levels, level)
		total += len(words)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })

	fmt.Printf("Found %d words across %d levels\n", total, len(levels))

	if cmd.Verbose {
		fmt.Println("\n=== Levels Found ===")
		for _, level := range levels {
			fmt.Printf("  %s: %d words\n", level, len(doc[level]))
		}
	}

	if cmd.DryRun {
		fmt.Println("\nDry run complete. Use without -dry-run to import.")
		return nil
	}

	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	fmt.Printf("\nSaving to database: %s\n", absDBPath)

	db, err := database.NewDatabase(absDBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repo := dictionary.NewRepository(db.DB)
	imported := 0
	for _, level := range levels {
		words := doc[level]
		if cmd.Verbose {
			fmt.Printf("  -> level %s (%d words)...\n", level, len(words))
		}
		if err := repo.SaveWords(words, level, cmd.LanguagePair); err != nil {
			return fmt.Errorf("failed to save level %s: %w", level, err)
		}
		imported += len(words)
	}

	fmt.Println("\n=== Import Summary ===")
	fmt.Printf("Words imported: %d (%s)\n", imported, cmd.LanguagePair)
	fmt.Println("\nImport complete!")
	return nil
}

func (cmd *ImportWordsCommand) loadDocument() (wordsource.LevelDocument, error) {
	if cmd.URL != "" {
		fmt.Printf("Fetching word document from %s\n", cmd.URL)
		client := wordsource.NewClient(cmd.URL, "", 0)
		return client.FetchWords(context.Background())
	}

	fmt.Printf("Reading word document from %s\n", cmd.FilePath)
	data, err := os.ReadFile(cmd.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read word document: %w", err)
	}

	var doc wordsource.LevelDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse word document: %w", err)
	}
	if len(doc) == 0 {
		return nil, fmt.Errorf("word document is empty")
	}
	return doc, nil
}
