package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/mayarosales/cakecafe-backend/pkg/enums"
)

// Product is a menu listing. Only active rows are sold; inactive rows stay
// around so historical order snapshots keep a valid reference.
type Product struct {
	ID         uuid.UUID             `gorm:"column:id;type:uuid;primaryKey"`
	Name       string                `gorm:"column:name;not null"`
	PriceCents int                   `gorm:"column:price_cents;not null"`
	Category   enums.ProductCategory `gorm:"column:category;not null"`
	ImageURL   string                `gorm:"column:image_url;not null"`
	Popularity int                   `gorm:"column:popularity;not null;default:0"`
	Badge      *string               `gorm:"column:badge"`
	IsActive   bool                  `gorm:"column:is_active;not null;default:true"`
	CreatedAt  time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
