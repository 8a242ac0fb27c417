package audit

import (
	"log"
	"time"
)

// Service provides high-level audit logging functionality.
type Service struct {
	auditor *Auditor
}

// NewService creates a new audit service.
func NewService(auditor *Auditor) *Service {
	return &Service{auditor: auditor}
}

// LogAsync records an audit event in the background (non-blocking).
func (s *Service) LogAsync(event *Event) {
	go func() {
		if _, err := s.auditor.Save(event); err != nil {
			log.Printf("Failed to log audit event: %v", err)
		}
	}()
}

// LogImport records a bulk dictionary or image-list import.
func (s *Service) LogImport(languagePair, description string, wordsLoaded int, err error) {
	event := &Event{
		Type:         EventImport,
		Action:       "bulk_import",
		Description:  description,
		LanguagePair: languagePair,
		Status:       StatusSuccess,
		Metadata: map[string]any{
			"words_loaded": wordsLoaded,
		},
	}
	if err != nil {
		event.Status = StatusFailed
		event.ErrorMsg = truncate(err.Error(), 500)
	}
	s.LogAsync(event)
}

// LogBackup records a backup export.
func (s *Service) LogBackup(languagePair, documentPath string, err error) {
	event := &Event{
		Type:         EventBackup,
		Action:       "backup_export",
		Description:  documentPath,
		LanguagePair: languagePair,
		Status:       StatusSuccess,
	}
	if err != nil {
		event.Status = StatusFailed
		event.ErrorMsg = truncate(err.Error(), 500)
	}
	s.LogAsync(event)
}

// LogRestore records a restore replay, including how many items were
// skipped by the best-effort replay.
func (s *Service) LogRestore(languagePair string, skipped int, success bool) {
	event := &Event{
		Type:         EventRestore,
		Action:       "backup_restore",
		LanguagePair: languagePair,
		Status:       StatusSuccess,
		Metadata: map[string]any{
			"skipped_items": skipped,
		},
	}
	if !success {
		event.Status = StatusFailed
	}
	s.LogAsync(event)
}

// LogCleanup records a maintenance cleanup run.
func (s *Service) LogCleanup(action string, removed int64) {
	s.LogAsync(&Event{
		Type:        EventCleanup,
		Action:      action,
		Status:      StatusSuccess,
		Metadata:    map[string]any{"removed": removed},
		Description: "scheduled maintenance",
	})
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(retention time.Duration) (int64, error) {
	return s.auditor.DeleteOldEvents(retention)
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
