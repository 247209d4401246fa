package catalog

import (
	"context"

	pkgerrors "github.com/mayarosales/cakecafe-backend/pkg/errors"
)

// Service exposes the public menu and gallery read paths.
type Service interface {
	ListProducts(ctx context.Context) ([]ProductDTO, error)
	ListGallery(ctx context.Context) ([]GalleryImageDTO, error)
}

type serviceImpl struct {
	repo Repository
}

// NewService builds the catalog service.
func NewService(repo Repository) Service {
	return &serviceImpl{repo: repo}
}

func (s *serviceImpl) ListProducts(ctx context.Context) ([]ProductDTO, error) {
	products, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing products")
	}
	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, toProductDTO(p))
	}
	return dtos, nil
}

func (s *serviceImpl) ListGallery(ctx context.Context) ([]GalleryImageDTO, error) {
	images, err := s.repo.ListGallery(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing gallery")
	}
	dtos := make([]GalleryImageDTO, 0, len(images))
	for _, g := range images {
		dtos = append(dtos, toGalleryImageDTO(g))
	}
	return dtos, nil
}
