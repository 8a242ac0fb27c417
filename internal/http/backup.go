package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelimeci/kelimeci/internal/audit"
	"github.com/kelimeci/kelimeci/internal/backup"
)

type BackupController struct {
	backupService *backup.Service
	auditService  *audit.Service
}

func NewBackupController(backupService *backup.Service, auditService *audit.Service) *BackupController {
	return &BackupController{backupService: backupService, auditService: auditService}
}

// CreateBackup writes a backup document for one language pair and
// returns its path.
// POST /api/backup
func (bc *BackupController) CreateBackup(c *gin.Context) {
	var req struct {
		LanguagePair string `json:"language_pair" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "language_pair is required")
		return
	}

	path, err := bc.backupService.Backup(req.LanguagePair)
	if bc.auditService != nil {
		bc.auditService.LogBackup(req.LanguagePair, path, err)
	}
	if err != nil {
		respondInternalError(c, err, "create backup")
		return
	}

	respondCreated(c, gin.H{"path": path})
}

// Restore replays a backup document into the database. Validation
// failures fail the whole restore; per-item failures are reported in
// the skipped list.
// POST /api/restore
func (bc *BackupController) Restore(c *gin.Context) {
	var req struct {
		Path string `json:"path" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "path is required")
		return
	}

	result := bc.backupService.Restore(req.Path, nil)
	if bc.auditService != nil {
		bc.auditService.LogRestore(result.LanguagePair, len(result.Skipped), result.Success)
	}
	if !result.Success {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}

	c.JSON(http.StatusOK, result)
}
