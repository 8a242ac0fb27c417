package backup

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
)

// Restore replays a backup document from path into the stores. Validation
// fails closed: a document missing its version, timestamp or language pair
// is rejected before any write. The replay itself is best-effort per item
// rather than all-or-nothing, since one malformed word or list must not
// cost the user the rest of the backup. Every dropped item is reported in
// RestoreResult.Skipped. onSettingsRestored, when non-nil, fires after the
// settings stage so the caller can re-apply theme and locale immediately.
func (s *Service) Restore(path string, onSettingsRestored func()) RestoreResult {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Could not read backup document %s: %v", path, err)
		return RestoreResult{Success: false}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("Could not parse backup document %s: %v", path, err)
		return RestoreResult{Success: false}
	}
	if err := doc.Validate(); err != nil {
		log.Printf("Rejecting backup document %s: %v", path, err)
		return RestoreResult{Success: false}
	}

	result := RestoreResult{Success: true, LanguagePair: doc.LanguagePair}

	s.restoreLearnedWords(&doc, &result)
	s.restoreExercises(&doc, &result)
	s.restoreWordLists(&doc, &result)
	s.restoreSettings(&doc, &result)

	if onSettingsRestored != nil {
		onSettingsRestored()
	}
	return result
}

// restoreLearnedWords replays the learned words as one bulk upsert; a
// failure here is logged and restoration continues with the other stages.
func (s *Service) restoreLearnedWords(doc *Document, result *RestoreResult) {
	if len(doc.LearnedWords) == 0 {
		return
	}
	if err := s.learned.SaveLearnedWords(doc.LearnedWords, doc.LanguagePair); err != nil {
		log.Printf("Restore: could not save learned words: %v", err)
		result.Skipped = append(result.Skipped, SkippedItem{
			Stage:  "learned_words",
			Item:   fmt.Sprintf("%d words", len(doc.LearnedWords)),
			Reason: err.Error(),
		})
	}
}

// restoreExercises replays results one at a time. Each gets a fresh row
// id; the original id only serves to look up the matching detail entry.
func (s *Service) restoreExercises(doc *Document, result *RestoreResult) {
	details := make(map[uint]ExerciseDetailEntry, len(doc.ExerciseDetails))
	for _, entry := range doc.ExerciseDetails {
		details[entry.ExerciseID] = entry
	}

	for _, res := range doc.ExerciseResults {
		originalID := res.ID
		res.ID = 0
		res.LanguagePair = doc.LanguagePair

		newID, ok := s.exercises.SaveExerciseResult(res)
		if !ok {
			result.Skipped = append(result.Skipped, SkippedItem{
				Stage:  "exercise_results",
				Item:   fmt.Sprintf("exercise %d", originalID),
				Reason: "could not save result row",
			})
			continue
		}

		entry, hasDetails := details[originalID]
		if !hasDetails {
			continue
		}
		if err := s.exercises.SaveExerciseDetails(newID, entry.Questions, doc.LanguagePair); err != nil {
			log.Printf("Restore: could not attach details of exercise %d: %v", originalID, err)
			result.Skipped = append(result.Skipped, SkippedItem{
				Stage:  "exercise_results",
				Item:   fmt.Sprintf("details of exercise %d", originalID),
				Reason: err.Error(),
			})
		}
	}
}

// restoreWordLists resolves name collisions by replacement: an existing
// list with the same name is deleted (cascading to its items) and
// recreated fresh from the document.
func (s *Service) restoreWordLists(doc *Document, result *RestoreResult) {
	for _, list := range doc.CustomWordLists {
		existing, err := s.lists.GetWordListByName(list.Name, doc.LanguagePair)
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedItem{
				Stage:  "word_lists",
				Item:   list.Name,
				Reason: err.Error(),
			})
			continue
		}
		if existing != nil {
			if err := s.lists.DeleteWordList(existing.ID); err != nil {
				result.Skipped = append(result.Skipped, SkippedItem{
					Stage:  "word_lists",
					Item:   list.Name,
					Reason: fmt.Sprintf("could not replace existing list: %v", err),
				})
				continue
			}
		}

		newID, ok := s.lists.CreateWordList(list.Name, doc.LanguagePair)
		if !ok {
			result.Skipped = append(result.Skipped, SkippedItem{
				Stage:  "word_lists",
				Item:   list.Name,
				Reason: "could not create list",
			})
			continue
		}

		items := doc.CustomWordListItems[strconv.FormatUint(uint64(list.ID), 10)]
		for _, item := range items {
			item.ID = 0
			if err := s.lists.AddWordToList(newID, item); err != nil {
				log.Printf("Restore: could not add %q to list %q: %v", item.Word, list.Name, err)
				result.Skipped = append(result.Skipped, SkippedItem{
					Stage:  "word_lists",
					Item:   fmt.Sprintf("%s/%s", list.Name, item.Word),
					Reason: err.Error(),
				})
			}
		}
	}
}

// restoreSettings writes every key back verbatim, JSON-encoding values
// that are not already strings.
func (s *Service) restoreSettings(doc *Document, result *RestoreResult) {
	for key, value := range doc.Settings {
		stored, ok := value.(string)
		if !ok {
			encoded, err := json.Marshal(value)
			if err != nil {
				result.Skipped = append(result.Skipped, SkippedItem{
					Stage:  "settings",
					Item:   key,
					Reason: err.Error(),
				})
				continue
			}
			stored = string(encoded)
		}
		if err := s.settings.SetItem(key, stored); err != nil {
			result.Skipped = append(result.Skipped, SkippedItem{
				Stage:  "settings",
				Item:   key,
				Reason: err.Error(),
			})
		}
	}
}
