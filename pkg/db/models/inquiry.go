package models

import (
	"time"

	"github.com/google/uuid"

	dbtypes "github.com/mayarosales/cakecafe-backend/pkg/db/types"
	"github.com/mayarosales/cakecafe-backend/pkg/enums"
)

// Inquiry is the single intake table behind the storefront: paid cart
// checkouts (ORDER), custom cake requests (CUSTOM_ORDER), and plain contact
// messages (GENERAL), discriminated by Type.
//
// Payment fields are populated only for ORDER rows. AmountCents and ItemsJSON
// are written once at checkout and never recomputed from the catalog.
type Inquiry struct {
	ID                     uuid.UUID               `gorm:"column:id;type:uuid;primaryKey"`
	Type                   enums.InquiryType       `gorm:"column:type;not null;default:GENERAL"`
	Status                 enums.InquiryStatus     `gorm:"column:status;not null;default:OPEN"`
	Name                   string                  `gorm:"column:name;not null"`
	Email                  string                  `gorm:"column:email;not null"`
	Phone                  *string                 `gorm:"column:phone"`
	PreferredContactMethod *enums.PreferredContact `gorm:"column:preferred_contact_method"`
	Message                *string                 `gorm:"column:message"`

	PaymentStatus           *enums.PaymentStatus `gorm:"column:payment_status"`
	AmountCents             *int                 `gorm:"column:amount_cents"`
	Currency                *string              `gorm:"column:currency"`
	ItemsJSON               dbtypes.LineItems    `gorm:"column:items_json;type:jsonb"`
	StripeCheckoutSessionID *string              `gorm:"column:stripe_checkout_session_id"`
	StripePaymentIntentID   *string              `gorm:"column:stripe_payment_intent_id"`
	PaidAt                  *time.Time           `gorm:"column:paid_at"`

	RequestedFor *time.Time                  `gorm:"column:requested_for"`
	Details      *dbtypes.CustomOrderDetails `gorm:"column:details;type:jsonb"`

	ResolutionNote *string    `gorm:"column:resolution_note"`
	ResolvedAt     *time.Time `gorm:"column:resolved_at"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the shared intake table.
func (Inquiry) TableName() string {
	return "inquiries"
}
