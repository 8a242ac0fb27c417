// Package wordsource fetches the remote documents that seed the local
// database: the level-keyed word list and the background image URL list.
// The stores themselves have no network dependency; this client hands them
// already-parsed structures.
package wordsource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/kelimeci/kelimeci/internal/database/dictionary"
	"github.com/kelimeci/kelimeci/internal/entities"
)

// LevelDocument is the remote word list, keyed by level:
// {"A1": [{word, meaning, example}, ...], "A2": [...], ...}
type LevelDocument map[entities.Level][]dictionary.WordInput

// Client fetches remote word and image documents over HTTP.
type Client struct {
	httpClient *http.Client
	wordsURL   string
	imagesURL  string
}

// NewClient creates a word-source client. timeout bounds each fetch; zero
// means a 30 second default.
func NewClient(wordsURL, imagesURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		wordsURL:   wordsURL,
		imagesURL:  imagesURL,
	}
}

// FetchWords downloads and parses the level-keyed word document.
func (c *Client) FetchWords(ctx context.Context) (LevelDocument, error) {
	if c.wordsURL == "" {
		return nil, fmt.Errorf("word source URL is not configured")
	}

	var doc LevelDocument
	if err := c.fetchJSON(ctx, c.wordsURL, &doc); err != nil {
		return nil, fmt.Errorf("fetch word document: %w", err)
	}
	if len(doc) == 0 {
		return nil, fmt.Errorf("word document is empty")
	}
	return doc, nil
}

// FetchImageURLs downloads the background image URL list.
func (c *Client) FetchImageURLs(ctx context.Context) ([]string, error) {
	if c.imagesURL == "" {
		return nil, fmt.Errorf("image source URL is not configured")
	}

	var urls []string
	if err := c.fetchJSON(ctx, c.imagesURL, &urls); err != nil {
		return nil, fmt.Errorf("fetch image list: %w", err)
	}
	return urls, nil
}

func (c *Client) fetchJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Kelimeci/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
