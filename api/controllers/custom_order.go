package controllers

import (
	"net/http"

	"github.com/mayarosales/cakecafe-backend/api/responses"
	"github.com/mayarosales/cakecafe-backend/api/validators"
	"github.com/mayarosales/cakecafe-backend/internal/inquiries"
	"github.com/mayarosales/cakecafe-backend/pkg/logger"
)

type customOrderRequest struct {
	Occasion          string `json:"occasion" validate:"required"`
	Fulfillment       string `json:"fulfillment"`
	DateTimeLocal     string `json:"dateTimeLocal" validate:"required"`
	SizeServings      string `json:"sizeServings" validate:"required"`
	Flavor            string `json:"flavor" validate:"required"`
	DesignTheme       string `json:"designTheme"`
	DesignPhotoURL    string `json:"designPhotoUrl"`
	CakeName          string `json:"cakeName"`
	CakeMessage       string `json:"cakeMessage"`
	DecorationDetails string `json:"decorationDetails"`
	BudgetDollars     string `json:"budgetDollars"`
	Allergies         string `json:"allergies"`
	ContactName       string `json:"contactName" validate:"required"`
	ContactEmail      string `json:"contactEmail" validate:"required,email"`
	ContactPhone      string `json:"contactPhone"`
	PreferredContact  string `json:"preferredContact" validate:"required"`
}

// CreateCustomOrder takes a custom cake request from the storefront form.
func CreateCustomOrder(svc inquiries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req customOrderRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		dto, err := svc.CreateCustomOrder(ctx, inquiries.CreateCustomOrderInput{
			Occasion:          req.Occasion,
			Fulfillment:       req.Fulfillment,
			DateTimeLocal:     req.DateTimeLocal,
			SizeServings:      req.SizeServings,
			Flavor:            req.Flavor,
			DesignTheme:       validators.SanitizeString(req.DesignTheme, 200),
			DesignPhotoURL:    validators.SanitizeString(req.DesignPhotoURL, 2048),
			CakeName:          validators.SanitizeString(req.CakeName, 120),
			CakeMessage:       validators.SanitizeString(req.CakeMessage, 500),
			DecorationDetails: validators.SanitizeString(req.DecorationDetails, 5000),
			BudgetDollars:     req.BudgetDollars,
			Allergies:         validators.SanitizeString(req.Allergies, 500),
			ContactName:       req.ContactName,
			ContactEmail:      req.ContactEmail,
			ContactPhone:      req.ContactPhone,
			PreferredContact:  req.PreferredContact,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{"id": dto.ID})
	}
}
