package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelimeci/kelimeci/internal/entities"
	"github.com/kelimeci/kelimeci/internal/imagecache"
)

// ImageStore defines database operations for the background image index.
type ImageStore interface {
	GetBackgroundImages() ([]entities.BackgroundImage, error)
	GetBackgroundImageURLs() ([]string, error)
	HasImages() (bool, error)
}

type ImagesController struct {
	store ImageStore
	cache *imagecache.Cache
}

func NewImagesController(store ImageStore, cache *imagecache.Cache) *ImagesController {
	return &ImagesController{store: store, cache: cache}
}

// GetImages returns the indexed background images.
// GET /api/images
func (ic *ImagesController) GetImages(c *gin.Context) {
	images, err := ic.store.GetBackgroundImages()
	if err != nil {
		respondInternalError(c, err, "get background images")
		return
	}
	c.JSON(http.StatusOK, images)
}

// GetBackground serves one background image from the on-disk cache,
// fetching and caching it on first request.
// GET /api/images/background?url=https://...
func (ic *ImagesController) GetBackground(c *gin.Context) {
	if ic.cache == nil {
		respondNotFound(c, "image cache")
		return
	}
	url := c.Query("url")
	if url == "" {
		respondBadRequest(c, "url is required")
		return
	}

	path, err := ic.cache.GetImage(url)
	if err != nil {
		respondInternalError(c, err, "get background image")
		return
	}
	c.File(path)
}

// ClearCache drops all cached image files and resets the index.
// POST /api/images/cache/clear
func (ic *ImagesController) ClearCache(c *gin.Context) {
	if ic.cache == nil {
		respondNotFound(c, "image cache")
		return
	}

	if err := ic.cache.Clear(); err != nil {
		respondInternalError(c, err, "clear image cache")
		return
	}

	respondSuccess(c, "image cache cleared")
}
