package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// CheckpointPurger provides the ability to delete expired resume checkpoints.
type CheckpointPurger interface {
	PurgeExpiredCheckpoints(retention time.Duration) (int64, error)
}

// PurgeCheckpointsTask removes unfinished-exercise checkpoints older than
// the resume window. Expired checkpoints are already invisible to reads;
// without this task the journal table grows without bound.
type PurgeCheckpointsTask struct {
	RetentionHours int `json:"retention_hours"`
}

// Config returns the queue configuration for checkpoint purge tasks.
func (t PurgeCheckpointsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "purge_checkpoints",
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

// PurgeCheckpointsProcessor creates a processor function for PurgeCheckpointsTask.
func PurgeCheckpointsProcessor(purger CheckpointPurger) backlite.QueueProcessor[PurgeCheckpointsTask] {
	return func(ctx context.Context, task PurgeCheckpointsTask) error {
		if purger == nil {
			return fmt.Errorf("checkpoint purger not configured")
		}

		retentionHours := task.RetentionHours
		if retentionHours <= 0 {
			retentionHours = 24
		}
		retention := time.Duration(retentionHours) * time.Hour

		purged, err := purger.PurgeExpiredCheckpoints(retention)
		if err != nil {
			return fmt.Errorf("purge checkpoints: %w", err)
		}

		log.Printf("[TASK] Purged %d expired checkpoints older than %dh", purged, retentionHours)
		return nil
	}
}

// NewPurgeCheckpointsQueue creates a backlite queue for checkpoint purging.
func NewPurgeCheckpointsQueue(purger CheckpointPurger) backlite.Queue {
	return backlite.NewQueue(PurgeCheckpointsProcessor(purger))
}
