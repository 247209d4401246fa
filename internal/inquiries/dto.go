package inquiries

import (
	"time"

	dbtypes "github.com/mayarosales/cakecafe-backend/pkg/db/types"
	"github.com/mayarosales/cakecafe-backend/pkg/db/models"
)

// InquiryDTO is the admin-facing representation of an intake row.
type InquiryDTO struct {
	ID                     string     `json:"id"`
	Type                   string     `json:"type"`
	Status                 string     `json:"status"`
	Name                   string     `json:"name"`
	Email                  string     `json:"email"`
	Phone                  *string    `json:"phone,omitempty"`
	PreferredContactMethod *string    `json:"preferredContactMethod,omitempty"`
	Message                *string    `json:"message,omitempty"`

	PaymentStatus           *string           `json:"paymentStatus,omitempty"`
	AmountCents             *int              `json:"amountCents,omitempty"`
	Currency                *string           `json:"currency,omitempty"`
	Items                   dbtypes.LineItems `json:"items,omitempty"`
	StripeCheckoutSessionID *string           `json:"stripeCheckoutSessionId,omitempty"`
	StripePaymentIntentID   *string           `json:"stripePaymentIntentId,omitempty"`
	PaidAt                  *time.Time        `json:"paidAt,omitempty"`

	RequestedFor *time.Time                  `json:"requestedFor,omitempty"`
	Details      *dbtypes.CustomOrderDetails `json:"details,omitempty"`

	ResolutionNote *string    `json:"resolutionNote,omitempty"`
	ResolvedAt     *time.Time `json:"resolvedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toDTO(m models.Inquiry) InquiryDTO {
	dto := InquiryDTO{
		ID:        m.ID.String(),
		Type:      string(m.Type),
		Status:    string(m.Status),
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Message:   m.Message,
		AmountCents: m.AmountCents,
		Currency:    m.Currency,
		Items:       m.ItemsJSON,
		StripeCheckoutSessionID: m.StripeCheckoutSessionID,
		StripePaymentIntentID:   m.StripePaymentIntentID,
		PaidAt:                  m.PaidAt,
		RequestedFor:            m.RequestedFor,
		Details:                 m.Details,
		ResolutionNote:          m.ResolutionNote,
		ResolvedAt:              m.ResolvedAt,
		CreatedAt:               m.CreatedAt,
		UpdatedAt:               m.UpdatedAt,
	}
	if m.PreferredContactMethod != nil {
		v := string(*m.PreferredContactMethod)
		dto.PreferredContactMethod = &v
	}
	if m.PaymentStatus != nil {
		v := string(*m.PaymentStatus)
		dto.PaymentStatus = &v
	}
	return dto
}
