package controllers

import (
	"net/http"

	"github.com/mayarosales/cakecafe-backend/api/responses"
	"github.com/mayarosales/cakecafe-backend/internal/catalog"
	"github.com/mayarosales/cakecafe-backend/pkg/logger"
)

// ListProducts serves the menu: active products, most popular first.
func ListProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		products, err := svc.ListProducts(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"products": products})
	}
}

// ListGallery serves the gallery page, newest first.
func ListGallery(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		images, err := svc.ListGallery(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"images": images})
	}
}
