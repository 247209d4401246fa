package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mayarosales/cakecafe-backend/api/responses"
	"github.com/mayarosales/cakecafe-backend/api/validators"
	"github.com/mayarosales/cakecafe-backend/internal/inquiries"
	pkgerrors "github.com/mayarosales/cakecafe-backend/pkg/errors"
	"github.com/mayarosales/cakecafe-backend/pkg/logger"
)

// AdminListInquiries lists intake rows for triage. Defaults to open ones.
func AdminListInquiries(svc inquiries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		status := r.URL.Query().Get("status")
		query := r.URL.Query().Get("q")

		dtos, err := svc.List(ctx, status, query)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"inquiries": dtos})
	}
}

// AdminGetInquiry returns a single intake row.
func AdminGetInquiry(svc inquiries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := inquiryIDFromPath(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		dto, err := svc.Get(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

type updateInquiryRequest struct {
	Status         string  `json:"status" validate:"required"`
	ResolutionNote *string `json:"resolutionNote"`
}

// AdminUpdateInquiry moves an inquiry between OPEN and RESOLVED. It never
// touches payment state.
func AdminUpdateInquiry(svc inquiries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := inquiryIDFromPath(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req updateInquiryRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		dto, err := svc.UpdateStatus(ctx, id, inquiries.UpdateStatusInput{
			Status:         req.Status,
			ResolutionNote: req.ResolutionNote,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

func inquiryIDFromPath(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "inquiryID")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "inquiry id must be a UUID")
	}
	return id, nil
}
