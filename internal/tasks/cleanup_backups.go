package tasks

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mikestefanello/backlite"
)

// CleanupBackupsTask prunes backup documents older than the configured
// retention period from the backup directory.
type CleanupBackupsTask struct {
	BackupDir     string `json:"backup_dir"`
	RetentionDays int    `json:"retention_days"`
}

// Config returns the queue configuration for backup cleanup tasks.
func (t CleanupBackupsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "cleanup_backups",
		MaxAttempts: 3,
		Backoff:     5 * time.Minute,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// CleanupBackupsProcessor creates a processor function for CleanupBackupsTask.
func CleanupBackupsProcessor() backlite.QueueProcessor[CleanupBackupsTask] {
	return func(ctx context.Context, task CleanupBackupsTask) error {
		if task.BackupDir == "" {
			return fmt.Errorf("backup directory not configured")
		}
		retentionDays := task.RetentionDays
		if retentionDays <= 0 {
			retentionDays = 90
		}
		cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

		entries, err := os.ReadDir(task.BackupDir)
		if os.IsNotExist(err) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read backup dir: %w", err)
		}

		var removed int
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				continue
			}
			if info.ModTime().Before(cutoff) {
				if err := os.Remove(filepath.Join(task.BackupDir, entry.Name())); err == nil {
					removed++
				}
			}
		}

		log.Printf("[TASK] Removed %d backup documents older than %d days", removed, retentionDays)
		return nil
	}
}

// NewCleanupBackupsQueue creates a backlite queue for backup pruning.
func NewCleanupBackupsQueue() backlite.Queue {
	return backlite.NewQueue(CleanupBackupsProcessor())
}
