// Command generate_demo creates a demo database with sample vocabulary data.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/kelimeci/kelimeci/internal/database"
	"github.com/kelimeci/kelimeci/internal/database/dictionary"
	"github.com/kelimeci/kelimeci/internal/database/exercises"
	"github.com/kelimeci/kelimeci/internal/database/learned"
	"github.com/kelimeci/kelimeci/internal/database/lists"
	"github.com/kelimeci/kelimeci/internal/entities"
)

const (
	defaultDemoDatabasePath = "./demo/demo.db"
	demoLanguagePair        = "en-tr"
)

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	seedDictionary(db)
	seedLearnedWords(db)
	seedWordLists(db)
	seedExerciseHistory(db)

	log.Println("Demo database generated successfully!")
}

func seedDictionary(db *database.Database) {
	repo := dictionary.NewRepository(db.DB)

	byLevel := map[entities.Level][]dictionary.WordInput{
		entities.LevelA1: {
			{Word: "house", Meaning: "ev", Example: "The house has a red door."},
			{Word: "water", Meaning: "su", Example: "Can I have a glass of water?"},
			{Word: "book", Meaning: "kitap", Example: "She reads a book every week."},
			{Word: "bread", Meaning: "ekmek", Example: "We buy fresh bread every morning."},
		},
		entities.LevelA2: {
			{Word: "journey", Meaning: "yolculuk", Example: "The journey took three hours."},
			{Word: "weather", Meaning: "hava durumu", Example: "The weather is lovely today."},
			{Word: "kitchen", Meaning: "mutfak", Example: "Dinner is cooking in the kitchen."},
		},
		entities.LevelB1: {
			{Word: "achievement", Meaning: "başarı", Example: "Graduating was a great achievement."},
			{Word: "environment", Meaning: "çevre", Example: "We must protect the environment."},
		},
		entities.LevelB2: {
			{Word: "negotiate", Meaning: "müzakere etmek", Example: "They negotiated a better price."},
			{Word: "inevitable", Meaning: "kaçınılmaz", Example: "Change is inevitable."},
		},
	}

	for level, words := range byLevel {
		if err := repo.SaveWords(words, level, demoLanguagePair); err != nil {
			log.Printf("Failed to seed level %s: %v", level, err)
			continue
		}
		log.Printf("Seeded %d words for level %s", len(words), level)
	}

	// A couple of streaks so the statistics endpoints have data
	for i := 0; i < 3; i++ {
		if err := repo.IncrementWordStreak("house", entities.LevelA1, demoLanguagePair); err != nil {
			log.Printf("Failed to bump streak: %v", err)
		}
	}
	if err := repo.IncrementWordStreak("journey", entities.LevelA2, demoLanguagePair); err != nil {
		log.Printf("Failed to bump streak: %v", err)
	}
}

func seedLearnedWords(db *database.Database) {
	repo := learned.NewRepository(db.DB)

	words := []entities.LearnedWord{
		{Word: "house", Meaning: "ev", Level: entities.LevelA1, LearnedAt: time.Now().Add(-72 * time.Hour)},
		{Word: "water", Meaning: "su", Level: entities.LevelA1, LearnedAt: time.Now().Add(-48 * time.Hour)},
		{Word: "journey", Meaning: "yolculuk", Level: entities.LevelA2, LearnedAt: time.Now().Add(-24 * time.Hour)},
	}
	if err := repo.SaveLearnedWords(words, demoLanguagePair); err != nil {
		log.Printf("Failed to seed learned words: %v", err)
		return
	}
	log.Printf("Seeded %d learned words", len(words))
}

func seedWordLists(db *database.Database) {
	repo := lists.NewRepository(db.DB)

	listID, ok := repo.CreateWordList("Travel", demoLanguagePair)
	if !ok {
		log.Printf("Failed to create demo word list")
		return
	}

	items := []entities.WordListItem{
		{Word: "journey", Meaning: "yolculuk", Level: entities.LevelA2},
		{Word: "weather", Meaning: "hava durumu", Level: entities.LevelA2},
	}
	for _, item := range items {
		if err := repo.AddWordToList(listID, item); err != nil {
			log.Printf("Failed to add %s to demo list: %v", item.Word, err)
		}
	}
	log.Printf("Seeded word list 'Travel' with %d words", len(items))
}

func seedExerciseHistory(db *database.Database) {
	repo := exercises.NewRepository(db.DB)

	result := entities.ExerciseResult{
		ExerciseType:   entities.ExerciseTypeMultipleChoice,
		Score:          8,
		TotalQuestions: 10,
		Date:           time.Now().Add(-20 * time.Hour),
		LanguagePair:   demoLanguagePair,
		WordSource:     entities.WordSourceDictionary,
		Level:          entities.LevelA1,
	}

	id, ok := repo.SaveExerciseResult(result)
	if !ok {
		log.Printf("Failed to seed exercise result")
		return
	}

	questions := []entities.QuestionRecord{
		{
			Type:          entities.QuestionTypeMultipleChoice,
			Question:      "house",
			Options:       []string{"ev", "su", "kitap", "ekmek"},
			UserAnswer:    "ev",
			CorrectAnswer: "ev",
			IsCorrect:     true,
		},
		{
			Type:          entities.QuestionTypeMultipleChoice,
			Question:      "bread",
			Options:       []string{"ev", "su", "kitap", "ekmek"},
			UserAnswer:    "kitap",
			CorrectAnswer: "ekmek",
			IsCorrect:     false,
		},
	}
	if err := repo.SaveExerciseDetails(id, questions, demoLanguagePair); err != nil {
		log.Printf("Failed to seed exercise details: %v", err)
		return
	}
	log.Printf("Seeded exercise history")
}
