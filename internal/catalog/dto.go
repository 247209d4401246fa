package catalog

import (
	"time"

	"github.com/mayarosales/cakecafe-backend/pkg/db/models"
)

// ProductDTO is the public menu representation. Prices stay in cents; the
// storefront formats dollars.
type ProductDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PriceCents int       `json:"priceCents"`
	Category   string    `json:"category"`
	ImageURL   string    `json:"imageUrl"`
	Popularity int       `json:"popularity"`
	Badge      *string   `json:"badge,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// GalleryImageDTO is the public gallery representation.
type GalleryImageDTO struct {
	ID        string    `json:"id"`
	Title     *string   `json:"title,omitempty"`
	ImageURL  string    `json:"imageUrl"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

func toProductDTO(p models.Product) ProductDTO {
	return ProductDTO{
		ID:         p.ID.String(),
		Name:       p.Name,
		PriceCents: p.PriceCents,
		Category:   string(p.Category),
		ImageURL:   p.ImageURL,
		Popularity: p.Popularity,
		Badge:      p.Badge,
		CreatedAt:  p.CreatedAt,
	}
}

func toGalleryImageDTO(g models.GalleryImage) GalleryImageDTO {
	return GalleryImageDTO{
		ID:        g.ID.String(),
		Title:     g.Title,
		ImageURL:  g.ImageURL,
		Category:  g.Category,
		CreatedAt: g.CreatedAt,
	}
}
