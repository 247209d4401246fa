package models

import (
	"time"

	"github.com/google/uuid"
)

// GalleryImage is a CDN-hosted photo shown on the gallery page.
type GalleryImage struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Title     *string   `gorm:"column:title"`
	ImageURL  string    `gorm:"column:image_url;not null"`
	Category  string    `gorm:"column:category;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
