package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"

	"github.com/kelimeci/kelimeci/internal/config"
	"github.com/kelimeci/kelimeci/internal/tasks"
)

// TasksController handles task queue management endpoints.
type TasksController struct {
	client *tasks.Client
	cfg    *config.Config
}

// NewTasksController creates a new TasksController.
func NewTasksController(client *tasks.Client, cfg *config.Config) *TasksController {
	return &TasksController{client: client, cfg: cfg}
}

// TaskTypeInfo describes an available task type.
type TaskTypeInfo struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Queue       string `json:"queue"`
}

// ListTaskTypes handles GET /api/tasks/types
// Returns the list of available task types that can be triggered.
func (tc *TasksController) ListTaskTypes(c *gin.Context) {
	types := []TaskTypeInfo{
		{
			Type:        "purge_checkpoints",
			Description: "Purge resume checkpoints older than the retention window",
			Queue:       "purge_checkpoints",
		},
		{
			Type:        "cleanup_backups",
			Description: "Remove backup documents older than the retention period",
			Queue:       "cleanup_backups",
		},
		{
			Type:        "cleanup_audit",
			Description: "Remove audit events older than the retention period",
			Queue:       "cleanup_audit",
		},
	}

	c.JSON(http.StatusOK, gin.H{
		"task_types": types,
	})
}

// GetTaskStatus handles GET /api/tasks/status/:id
// Returns the status of a specific task.
func (tc *TasksController) GetTaskStatus(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		respondBadRequest(c, "task ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := tc.client.Status(ctx, taskID)
	if err != nil {
		respondInternalError(c, err, "get task status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     taskID,
		"status": taskStatusToString(status),
	})
}

// RunTask handles POST /api/tasks/:type/run
// Manually triggers a task of the specified type.
func (tc *TasksController) RunTask(c *gin.Context) {
	taskType := c.Param("type")

	var task backlite.Task
	switch taskType {
	case "purge_checkpoints":
		task = tasks.PurgeCheckpointsTask{
			RetentionHours: int(tc.cfg.Maintenance.CheckpointRetention.Hours()),
		}
	case "cleanup_backups":
		task = tasks.CleanupBackupsTask{
			BackupDir:     tc.cfg.Backup.Dir,
			RetentionDays: tc.cfg.Backup.RetentionDays,
		}
	case "cleanup_audit":
		task = tasks.CleanupAuditTask{RetentionDays: tc.cfg.Audit.RetentionDays}
	default:
		respondBadRequest(c, fmt.Sprintf("unknown task type: %s", taskType))
		return
	}

	ids, err := tc.client.Add(task).Save()
	if err != nil {
		respondInternalError(c, err, "enqueue task")
		return
	}

	respondAccepted(c, "task enqueued", gin.H{"task_id": ids[0], "type": taskType})
}

func taskStatusToString(status backlite.TaskStatus) string {
	switch status {
	case backlite.TaskStatusPending:
		return "pending"
	case backlite.TaskStatusRunning:
		return "running"
	case backlite.TaskStatusSuccess:
		return "success"
	case backlite.TaskStatusFailure:
		return "failure"
	case backlite.TaskStatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
