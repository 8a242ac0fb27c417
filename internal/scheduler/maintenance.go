// Package scheduler runs the periodic maintenance cycle on a cron
// schedule, enqueueing the background tasks that purge expired resume
// checkpoints, prune old backup documents and trim the audit trail.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/kelimeci/kelimeci/internal/config"
	"github.com/kelimeci/kelimeci/internal/tasks"
)

// MaintenanceScheduler enqueues the maintenance task batch on a cron schedule.
type MaintenanceScheduler struct {
	taskClient *tasks.Client
	cfg        *config.Config

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewMaintenanceScheduler creates a new scheduler instance.
func NewMaintenanceScheduler(taskClient *tasks.Client, cfg *config.Config) *MaintenanceScheduler {
	return &MaintenanceScheduler{
		taskClient: taskClient,
		cfg:        cfg,
		cron:       cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler using the configured maintenance schedule.
func (s *MaintenanceScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if s.taskClient == nil {
		log.Printf("Maintenance scheduler: task queue disabled, skipping")
		return nil
	}

	schedule := s.cfg.Maintenance.Schedule
	entryID, err := s.cron.AddFunc(schedule, func() {
		s.runMaintenance()
	})
	if err != nil {
		return fmt.Errorf("invalid maintenance schedule '%s': %w", schedule, err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Maintenance scheduler: started with schedule '%s'", schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler.
func (s *MaintenanceScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	// Stop accepting new jobs and wait for running jobs to complete
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Maintenance scheduler: stopped")
}

// RunNow enqueues the maintenance batch immediately.
func (s *MaintenanceScheduler) RunNow() {
	go s.runMaintenance()
}

// IsRunning returns whether the scheduler is active.
func (s *MaintenanceScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next maintenance cycle will occur.
func (s *MaintenanceScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

// runMaintenance enqueues one task per maintenance concern. The queue
// handles retries, so a failed enqueue is only logged.
func (s *MaintenanceScheduler) runMaintenance() {
	log.Printf("Maintenance: enqueueing maintenance tasks")

	retentionHours := int(s.cfg.Maintenance.CheckpointRetention.Hours())
	if _, err := s.taskClient.Add(tasks.PurgeCheckpointsTask{RetentionHours: retentionHours}).Save(); err != nil {
		log.Printf("Maintenance: failed to enqueue checkpoint purge: %v", err)
	}

	if _, err := s.taskClient.Add(tasks.CleanupBackupsTask{
		BackupDir:     s.cfg.Backup.Dir,
		RetentionDays: s.cfg.Backup.RetentionDays,
	}).Save(); err != nil {
		log.Printf("Maintenance: failed to enqueue backup cleanup: %v", err)
	}

	if _, err := s.taskClient.Add(tasks.CleanupAuditTask{RetentionDays: s.cfg.Audit.RetentionDays}).Save(); err != nil {
		log.Printf("Maintenance: failed to enqueue audit cleanup: %v", err)
	}
}
