package wordsource

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/kelimeci/kelimeci/internal/database/dictionary"
	"github.com/kelimeci/kelimeci/internal/entities"
)

// DictionaryStore is the slice of the dictionary repository the loader uses.
type DictionaryStore interface {
	SaveWords(words []dictionary.WordInput, level entities.Level, languagePair string) error
	IsLanguageDataLoaded(languagePair string) (bool, error)
}

// ImageStore is the slice of the image repository the loader uses.
type ImageStore interface {
	SaveBackgroundImages(images []entities.BackgroundImage) error
}

// Loader drives first-time and refresh loads from the remote sources into
// the local stores, level by level. OnProgress, when set, is called after
// each level lands.
type Loader struct {
	client     *Client
	dict       DictionaryStore
	images     ImageStore
	OnProgress func(level entities.Level, loaded, total int)
}

// NewLoader creates a loader over the given client and stores.
func NewLoader(client *Client, dict DictionaryStore, images ImageStore) *Loader {
	return &Loader{client: client, dict: dict, images: images}
}

// LoadWords fetches the remote level-keyed document and bulk-loads every
// level for the language pair. Each level is one atomic store call;
// duplicate rows from a previous partial load are suppressed by the store.
// Returns the number of words handed to the store.
func (l *Loader) LoadWords(ctx context.Context, languagePair string) (int, error) {
	doc, err := l.client.FetchWords(ctx)
	if err != nil {
		return 0, err
	}

	// Deterministic level order keeps progress reporting stable.
	levels := make([]entities.Level, 0, len(doc))
	for level := range doc {
		levels = append(levels, level)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })

	loaded := 0
	for i, level := range levels {
		words := doc[level]
		if err := l.dict.SaveWords(words, level, languagePair); err != nil {
			return loaded, fmt.Errorf("load level %s: %w", level, err)
		}
		loaded += len(words)
		log.Printf("Loaded %d words for level %s (%s)", len(words), level, languagePair)
		if l.OnProgress != nil {
			l.OnProgress(level, i+1, len(levels))
		}
	}
	return loaded, nil
}

// EnsureWordsLoaded performs a first-time load only when no dictionary
// data exists for the language pair yet.
func (l *Loader) EnsureWordsLoaded(ctx context.Context, languagePair string) (int, error) {
	exists, err := l.dict.IsLanguageDataLoaded(languagePair)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, nil
	}
	return l.LoadWords(ctx, languagePair)
}

// LoadImages fetches the remote image URL list and indexes it.
func (l *Loader) LoadImages(ctx context.Context) (int, error) {
	urls, err := l.client.FetchImageURLs(ctx)
	if err != nil {
		return 0, err
	}
	images := make([]entities.BackgroundImage, len(urls))
	for i, url := range urls {
		images[i] = entities.BackgroundImage{URL: url}
	}
	if err := l.images.SaveBackgroundImages(images); err != nil {
		return 0, err
	}
	return len(images), nil
}
