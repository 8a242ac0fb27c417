// Package images provides database operations for the background-image
// cache index, which maps remote image URLs to optional local file paths.
// Unlike the word tables this index is global, not scoped by language pair.
package images

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kelimeci/kelimeci/internal/entities"
)

const saveBatchSize = 500

// Repository handles all background-image database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new background-image repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// SaveBackgroundImages stores a fetched URL list, replacing rows whose URL
// already exists. Batches run in one transaction.
func (r *Repository) SaveBackgroundImages(images []entities.BackgroundImage) error {
	if len(images) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]entities.BackgroundImage, len(images))
	for i, img := range images {
		rows[i] = entities.BackgroundImage{
			URL:       img.URL,
			LocalPath: img.LocalPath,
			CreatedAt: now,
		}
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		for start := 0; start < len(rows); start += saveBatchSize {
			end := min(start+saveBatchSize, len(rows))
			batch := rows[start:end]
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "url"}},
				DoUpdates: clause.AssignmentColumns([]string{"local_path"}),
			}).Create(&batch).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// GetBackgroundImages returns every indexed image.
func (r *Repository) GetBackgroundImages() ([]entities.BackgroundImage, error) {
	var images []entities.BackgroundImage
	err := r.db.Order("created_at ASC, id ASC").Find(&images).Error
	return images, err
}

// GetBackgroundImageURLs returns just the remote URLs.
func (r *Repository) GetBackgroundImageURLs() ([]string, error) {
	var urls []string
	err := r.db.Model(&entities.BackgroundImage{}).
		Order("created_at ASC, id ASC").Pluck("url", &urls).Error
	return urls, err
}

// UpdateLocalPath records (or clears) the locally cached file for a URL.
func (r *Repository) UpdateLocalPath(url, localPath string) error {
	return r.db.Model(&entities.BackgroundImage{}).
		Where("url = ?", url).UpdateColumn("local_path", localPath).Error
}

// ClearCache nulls every local path, forcing a re-download of all images.
// The URL index itself is kept.
func (r *Repository) ClearCache() error {
	return r.db.Model(&entities.BackgroundImage{}).
		Where("local_path <> ''").UpdateColumn("local_path", "").Error
}

// HasImages reports whether any image URLs are indexed at all.
func (r *Repository) HasImages() (bool, error) {
	var count int64
	err := r.db.Model(&entities.BackgroundImage{}).Count(&count).Error
	return count > 0, err
}
