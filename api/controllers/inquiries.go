package controllers

import (
	"net/http"

	"github.com/mayarosales/cakecafe-backend/api/responses"
	"github.com/mayarosales/cakecafe-backend/api/validators"
	"github.com/mayarosales/cakecafe-backend/internal/inquiries"
	"github.com/mayarosales/cakecafe-backend/pkg/logger"
)

type inquiryRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// CreateInquiry takes a general contact-form submission.
func CreateInquiry(svc inquiries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req inquiryRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		dto, err := svc.CreateGeneral(ctx, inquiries.CreateGeneralInput{
			Name:    validators.SanitizeString(req.Name, 120),
			Email:   validators.SanitizeString(req.Email, 254),
			Phone:   validators.SanitizeString(req.Phone, 32),
			Message: validators.SanitizeString(req.Message, 5000),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{"id": dto.ID})
	}
}
