package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelimeci/kelimeci/internal/audit"
	"github.com/kelimeci/kelimeci/internal/wordsource"
)

type SyncController struct {
	loader       *wordsource.Loader
	auditService *audit.Service
}

func NewSyncController(loader *wordsource.Loader, auditService *audit.Service) *SyncController {
	return &SyncController{loader: loader, auditService: auditService}
}

// SyncWords downloads the remote word document for one language pair
// and loads it into the dictionary.
// POST /api/sync/words
func (sc *SyncController) SyncWords(c *gin.Context) {
	if sc.loader == nil {
		respondBadRequest(c, "word source is not configured")
		return
	}

	var req struct {
		LanguagePair string `json:"language_pair" binding:"required"`
		Force        bool   `json:"force"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "language_pair is required")
		return
	}

	var (
		loaded int
		err    error
	)
	if req.Force {
		loaded, err = sc.loader.LoadWords(c.Request.Context(), req.LanguagePair)
	} else {
		loaded, err = sc.loader.EnsureWordsLoaded(c.Request.Context(), req.LanguagePair)
	}
	if sc.auditService != nil {
		sc.auditService.LogImport(req.LanguagePair, "word source sync", loaded, err)
	}
	if err != nil {
		respondInternalError(c, err, "sync words")
		return
	}

	respondSuccess(c, "words synced")
}

// SyncImages refreshes the background image index from the remote list.
// POST /api/sync/images
func (sc *SyncController) SyncImages(c *gin.Context) {
	if sc.loader == nil {
		respondBadRequest(c, "word source is not configured")
		return
	}

	loaded, err := sc.loader.LoadImages(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "sync images")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "image index synced", Data: gin.H{"images": loaded}})
}
