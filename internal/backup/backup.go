package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/kelimeci/kelimeci/internal/entities"
	"github.com/kelimeci/kelimeci/internal/utils"
)

// Backup assembles the full snapshot for one language pair and writes it
// to the backup directory, creating the directory on demand. It returns
// the path of the written document. Beyond that file it has no side
// effects; sharing or uploading the document is the caller's concern.
func (s *Service) Backup(languagePair string) (string, error) {
	doc, err := s.assemble(languagePair)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize backup document: %w", err)
	}

	if err := os.MkdirAll(s.backupDir, 0755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	filename := fmt.Sprintf("kelimeci-backup-%s-%s.json",
		utils.SanitizeFilename(languagePair),
		s.now().Format("20060102-150405"))
	path := filepath.Join(s.backupDir, filename)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write backup document: %w", err)
	}
	return path, nil
}

func (s *Service) assemble(languagePair string) (*Document, error) {
	doc := &Document{
		Version:             DocumentVersion,
		ID:                  uuid.NewString(),
		Timestamp:           s.now().UTC().Format("2006-01-02T15:04:05Z07:00"),
		LanguagePair:        languagePair,
		ExerciseDetails:     []ExerciseDetailEntry{},
		CustomWordListItems: map[string][]entities.WordListItem{},
		Settings:            map[string]any{},
	}

	learned, err := s.learned.GetLearnedWords(languagePair)
	if err != nil {
		return nil, fmt.Errorf("collect learned words: %w", err)
	}
	doc.LearnedWords = learned

	results, err := s.exercises.GetExerciseResults(languagePair)
	if err != nil {
		return nil, fmt.Errorf("collect exercise results: %w", err)
	}
	doc.ExerciseResults = results
	for _, result := range results {
		questions, err := s.exercises.GetExerciseDetails(result.ID)
		if err != nil {
			return nil, fmt.Errorf("collect details for exercise %d: %w", result.ID, err)
		}
		if questions == nil {
			continue
		}
		doc.ExerciseDetails = append(doc.ExerciseDetails, ExerciseDetailEntry{
			ExerciseID:   result.ID,
			Questions:    questions,
			LanguagePair: languagePair,
		})
	}

	lists, err := s.lists.GetWordLists(languagePair)
	if err != nil {
		return nil, fmt.Errorf("collect word lists: %w", err)
	}
	doc.CustomWordLists = lists
	for _, list := range lists {
		items, err := s.lists.GetWordsFromList(list.ID)
		if err != nil {
			return nil, fmt.Errorf("collect items of list %q: %w", list.Name, err)
		}
		doc.CustomWordListItems[strconv.FormatUint(uint64(list.ID), 10)] = items
	}

	settings, err := s.settings.ExportForBackup()
	if err != nil {
		return nil, fmt.Errorf("collect settings: %w", err)
	}
	for key, value := range settings {
		doc.Settings[key] = value
	}

	return doc, nil
}
