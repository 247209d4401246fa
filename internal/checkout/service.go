package checkout

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v84"

	"github.com/mayarosales/cakecafe-backend/internal/catalog"
	"github.com/mayarosales/cakecafe-backend/internal/inquiries"
	"github.com/mayarosales/cakecafe-backend/pkg/config"
	"github.com/mayarosales/cakecafe-backend/pkg/db/models"
	dbtypes "github.com/mayarosales/cakecafe-backend/pkg/db/types"
	"github.com/mayarosales/cakecafe-backend/pkg/enums"
	pkgerrors "github.com/mayarosales/cakecafe-backend/pkg/errors"
	"github.com/mayarosales/cakecafe-backend/pkg/logger"
	"github.com/mayarosales/cakecafe-backend/pkg/metrics"
)

// MetadataInquiryID is the Stripe metadata key carrying our order id.
const MetadataInquiryID = "inquiry_id"

const defaultOrderMessage = "Online order (Stripe Checkout)"

// CartItem is one client-submitted line. Quantities are trusted; prices
// never are.
type CartItem struct {
	ProductID string
	Qty       int
}

// Customer identifies the buyer on an order.
type Customer struct {
	Name  string
	Email string
	Phone string
	Note  string
}

// Input is a validated checkout submission.
type Input struct {
	Customer Customer
	Items    []CartItem
}

// Result carries the hosted payment page URL back to the storefront.
type Result struct {
	URL       string
	InquiryID string
}

// Service drives cart checkout: re-price, persist, then hand off to Stripe.
type Service interface {
	Execute(ctx context.Context, input Input) (*Result, error)
}

type serviceImpl struct {
	catalogRepo   catalog.Repository
	inquiriesRepo inquiries.Repository
	sessions      SessionCreator
	cfg           config.CheckoutConfig
	logg          *logger.Logger
	metrics       *metrics.StorefrontMetrics
}

// NewService builds the checkout service.
func NewService(
	catalogRepo catalog.Repository,
	inquiriesRepo inquiries.Repository,
	sessions SessionCreator,
	cfg config.CheckoutConfig,
	logg *logger.Logger,
	m *metrics.StorefrontMetrics,
) Service {
	return &serviceImpl{
		catalogRepo:   catalogRepo,
		inquiriesRepo: inquiriesRepo,
		sessions:      sessions,
		cfg:           cfg,
		logg:          logg,
		metrics:       m,
	}
}

func (s *serviceImpl) Execute(ctx context.Context, input Input) (*Result, error) {
	name := strings.TrimSpace(input.Customer.Name)
	email := strings.TrimSpace(input.Customer.Email)
	if name == "" || email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name and email are required")
	}
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	ids := make([]uuid.UUID, 0, len(input.Items))
	for _, item := range input.Items {
		id, err := uuid.Parse(strings.TrimSpace(item.ProductID))
		if err != nil || item.Qty <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cart items")
		}
		ids = append(ids, id)
	}

	products, err := s.catalogRepo.FindActiveByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading catalog rows")
	}
	productMap := make(map[uuid.UUID]models.Product, len(products))
	for _, p := range products {
		productMap[p.ID] = p
	}

	// Re-price server side. Any unknown or inactive id fails the whole cart.
	amountCents := 0
	snapshot := make(dbtypes.LineItems, 0, len(input.Items))
	for i, item := range input.Items {
		product, ok := productMap[ids[i]]
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid product in cart").
				WithDetails(map[string]any{"productId": item.ProductID})
		}
		amountCents += product.PriceCents * item.Qty
		snapshot = append(snapshot, dbtypes.LineItem{
			ProductID:      product.ID.String(),
			Name:           product.Name,
			UnitPriceCents: product.PriceCents,
			Qty:            item.Qty,
			ImageURL:       product.ImageURL,
		})
	}

	message := strings.TrimSpace(input.Customer.Note)
	if message == "" {
		message = defaultOrderMessage
	}

	pending := enums.PaymentStatusPending
	preferred := enums.PreferredContactEmail
	currency := s.cfg.Currency
	inquiry := &models.Inquiry{
		Type:                   enums.InquiryTypeOrder,
		Status:                 enums.InquiryStatusOpen,
		Name:                   name,
		Email:                  email,
		Phone:                  optionalString(input.Customer.Phone),
		PreferredContactMethod: &preferred,
		Message:                &message,
		PaymentStatus:          &pending,
		AmountCents:            &amountCents,
		Currency:               &currency,
		ItemsJSON:              snapshot,
	}
	if err := s.inquiriesRepo.Create(ctx, inquiry); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating order inquiry")
	}
	if s.metrics != nil {
		s.metrics.IncOrderCreated()
	}

	params := s.sessionParams(inquiry, snapshot, email)
	session, err := s.sessions.CreateSession(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating checkout session")
	}
	if session == nil || session.URL == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "stripe session URL missing")
	}

	// Best effort: the webhook correlates via metadata, not this column.
	if err := s.inquiriesRepo.SetCheckoutSession(ctx, inquiry.ID, session.ID); err != nil && s.logg != nil {
		logCtx := s.logg.WithInquiryID(ctx, inquiry.ID.String())
		s.logg.Warn(logCtx, "checkout.session_id_not_persisted")
	}

	return &Result{URL: session.URL, InquiryID: inquiry.ID.String()}, nil
}

func (s *serviceImpl) sessionParams(inquiry *models.Inquiry, snapshot dbtypes.LineItems, email string) *stripe.CheckoutSessionParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(snapshot))
	for _, item := range snapshot {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		if item.ImageURL != "" {
			productData.Images = stripe.StringSlice([]string{item.ImageURL})
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(int64(item.Qty)),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(s.cfg.Currency),
				UnitAmount:  stripe.Int64(int64(item.UnitPriceCents)),
				ProductData: productData,
			},
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail:     stripe.String(email),
		LineItems:         lineItems,
		SuccessURL:        stripe.String(s.cfg.SuccessURL()),
		CancelURL:         stripe.String(s.cfg.CancelURL()),
		ClientReferenceID: stripe.String(inquiry.ID.String()),
	}
	params.AddMetadata(MetadataInquiryID, inquiry.ID.String())
	return params
}

func optionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
