// Package audit keeps a file-based trail of the operations that rewrite
// large parts of the database: bulk word imports, backups and restores.
// Each event is one JSON file in the audit directory, named by UUID, so
// events can be inspected or shipped off-device without touching SQLite.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventImport  EventType = "import"
	EventBackup  EventType = "backup"
	EventRestore EventType = "restore"
	EventCleanup EventType = "cleanup"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Event is one recorded operation.
type Event struct {
	ID           string         `json:"id"`
	Type         EventType      `json:"type"`
	Action       string         `json:"action"`
	Description  string         `json:"description,omitempty"`
	LanguagePair string         `json:"language_pair,omitempty"`
	Status       Status         `json:"status"`
	ErrorMsg     string         `json:"error,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	Timestamp    time.Time      `json:"timestamp"`
}

type Auditor struct {
	AuditDir string
}

func NewAuditor(auditDir string) *Auditor {
	return &Auditor{
		AuditDir: auditDir,
	}
}

// Save writes an event as a JSON file with a UUID filename and returns the
// filename.
func (a *Auditor) Save(event *Event) (string, error) {
	if err := a.ensureAuditDir(); err != nil {
		return "", fmt.Errorf("failed to ensure audit directory: %w", err)
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	jsonData, err := json.MarshalIndent(event, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal event to JSON: %w", err)
	}

	filename := fmt.Sprintf("%s.json", event.ID)
	path := filepath.Join(a.AuditDir, filename)
	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write audit file: %w", err)
	}

	return filename, nil
}

// DeleteOldEvents removes event files older than the retention duration
// and returns how many were deleted.
func (a *Auditor) DeleteOldEvents(retention time.Duration) (int64, error) {
	entries, err := os.ReadDir(a.AuditDir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read audit directory: %w", err)
	}

	cutoff := time.Now().Add(-retention)
	var deleted int64
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(a.AuditDir, entry.Name())); err == nil {
				deleted++
			}
		}
	}
	return deleted, nil
}

// ensureAuditDir creates the audit directory if it doesn't exist
func (a *Auditor) ensureAuditDir() error {
	if _, err := os.Stat(a.AuditDir); os.IsNotExist(err) {
		if err := os.MkdirAll(a.AuditDir, 0755); err != nil {
			return fmt.Errorf("failed to create audit directory: %w", err)
		}
	}
	return nil
}
