// Package imagecache handles local caching of background image bytes.
// The database only indexes URL-to-path mappings; this package owns the
// files themselves and keeps the index in sync through the images store.
package imagecache

import (
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Index is the slice of the image repository the cache keeps in sync.
type Index interface {
	UpdateLocalPath(url, localPath string) error
	ClearCache() error
}

// Cache downloads background images into a local directory and records
// their paths in the index.
type Cache struct {
	cacheDir   string
	index      Index
	httpClient *http.Client
}

// NewCache creates an image cache at the specified directory.
func NewCache(cacheDir string, index Index) (*Cache, error) {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	return &Cache{
		cacheDir: cacheDir,
		index:    index,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// GetImage returns the local path for a URL, downloading and indexing it
// on first use. Returns empty string for an empty URL.
func (c *Cache) GetImage(url string) (string, error) {
	if url == "" {
		return "", nil
	}

	cachePath := filepath.Join(c.cacheDir, c.imageFilename(url))

	if _, err := os.Stat(cachePath); err == nil {
		return cachePath, nil
	}

	if err := c.fetchAndCache(url, cachePath); err != nil {
		return "", err
	}
	if err := c.index.UpdateLocalPath(url, cachePath); err != nil {
		return "", fmt.Errorf("record cached path: %w", err)
	}

	return cachePath, nil
}

// Invalidate removes the cached file for one URL and clears its index path.
func (c *Cache) Invalidate(url string) error {
	cachePath := filepath.Join(c.cacheDir, c.imageFilename(url))
	if err := os.Remove(cachePath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return c.index.UpdateLocalPath(url, "")
}

// Clear deletes every cached file and nulls all local paths in the index,
// forcing a re-download of all images.
func (c *Cache) Clear() error {
	matches, err := filepath.Glob(filepath.Join(c.cacheDir, "bg_*"))
	if err != nil {
		return err
	}
	for _, match := range matches {
		if err := os.Remove(match); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return c.index.ClearCache()
}

// imageFilename generates a unique filename from the URL hash.
func (c *Cache) imageFilename(url string) string {
	hash := sha256.Sum256([]byte(url))
	return fmt.Sprintf("bg_%x", hash[:12])
}

// fetchAndCache downloads an image and saves it to the cache atomically.
func (c *Cache) fetchAndCache(url, cachePath string) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "Kelimeci/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to fetch image: status %d", resp.StatusCode)
	}

	// Create temp file in same directory for atomic write
	tmpFile, err := os.CreateTemp(c.cacheDir, "bg_tmp_")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()
	defer func() {
		tmpFile.Close()
		os.Remove(tmpPath) // Clean up if we didn't rename
	}()

	if _, err = io.Copy(tmpFile, resp.Body); err != nil {
		return err
	}
	tmpFile.Close()

	return os.Rename(tmpPath, cachePath)
}

// CacheDir returns the cache directory path.
func (c *Cache) CacheDir() string {
	return c.cacheDir
}
