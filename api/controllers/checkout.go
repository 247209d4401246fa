package controllers

import (
	"net/http"

	"github.com/mayarosales/cakecafe-backend/api/responses"
	"github.com/mayarosales/cakecafe-backend/api/validators"
	"github.com/mayarosales/cakecafe-backend/internal/checkout"
	"github.com/mayarosales/cakecafe-backend/pkg/logger"
)

type checkoutCustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
	Note  string `json:"note"`
}

type checkoutItemRequest struct {
	ID  string `json:"id" validate:"required"`
	Qty int    `json:"qty" validate:"required,min=1"`
}

type checkoutRequest struct {
	Customer checkoutCustomerRequest `json:"customer" validate:"required"`
	Items    []checkoutItemRequest   `json:"items" validate:"required,min=1,dive"`
}

// Checkout re-prices the submitted cart and returns the hosted payment URL.
func Checkout(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req checkoutRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		items := make([]checkout.CartItem, 0, len(req.Items))
		for _, item := range req.Items {
			items = append(items, checkout.CartItem{ProductID: item.ID, Qty: item.Qty})
		}

		result, err := svc.Execute(ctx, checkout.Input{
			Customer: checkout.Customer{
				Name:  req.Customer.Name,
				Email: req.Customer.Email,
				Phone: req.Customer.Phone,
				Note:  req.Customer.Note,
			},
			Items: items,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"url": result.URL})
	}
}
