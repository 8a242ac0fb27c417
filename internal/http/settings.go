package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelimeci/kelimeci/internal/settingsstore"
)

type SettingsController struct {
	settings *settingsstore.SettingsStore
}

func NewSettingsController(settings *settingsstore.SettingsStore) *SettingsController {
	return &SettingsController{settings: settings}
}

// GetSetting returns one setting value.
// GET /api/settings/:key
func (sc *SettingsController) GetSetting(c *gin.Context) {
	key := c.Param("key")

	value, err := sc.settings.GetItem(key)
	if err != nil {
		respondInternalError(c, err, "get setting")
		return
	}
	if value == "" {
		respondNotFound(c, "setting")
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "value": value})
}

// SetSetting stores one setting value.
// PUT /api/settings/:key
func (sc *SettingsController) SetSetting(c *gin.Context) {
	key := c.Param("key")

	var req struct {
		Value string `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "value is required")
		return
	}

	if err := sc.settings.SetItem(key, req.Value); err != nil {
		respondInternalError(c, err, "set setting")
		return
	}

	respondSuccess(c, "setting saved")
}

// DeleteSetting removes one setting.
// DELETE /api/settings/:key
func (sc *SettingsController) DeleteSetting(c *gin.Context) {
	key := c.Param("key")

	if err := sc.settings.RemoveItem(key); err != nil {
		respondInternalError(c, err, "delete setting")
		return
	}

	respondSuccess(c, "setting deleted")
}
