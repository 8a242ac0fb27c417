package tasks

import "time"

// Config holds the queue settings shared by every maintenance queue.
type Config struct {
	// Workers is the number of concurrent task workers.
	Workers int

	// MaxRetries is the maximum number of attempts per task.
	MaxRetries int

	// RetryDelay is the backoff between attempts.
	RetryDelay time.Duration

	// TaskTimeout bounds a single task execution.
	TaskTimeout time.Duration

	// ReleaseAfter is when a stuck claimed task is released back to
	// its queue.
	ReleaseAfter time.Duration

	// CleanupInterval is how often completed tasks are swept.
	CleanupInterval time.Duration

	// RetentionDuration is how long completed tasks stay queryable,
	// which also bounds how long Status can resolve a task id.
	RetentionDuration time.Duration
}

// DefaultConfig returns the settings used when no environment overrides
// are present. Maintenance tasks are small and infrequent, so two workers
// are plenty.
func DefaultConfig() Config {
	return Config{
		Workers:           2,
		MaxRetries:        3,
		RetryDelay:        time.Minute,
		TaskTimeout:       5 * time.Minute,
		ReleaseAfter:      15 * time.Minute,
		CleanupInterval:   time.Hour,
		RetentionDuration: 24 * time.Hour,
	}
}
