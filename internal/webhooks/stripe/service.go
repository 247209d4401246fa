package stripewebhook

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v84"

	"github.com/mayarosales/cakecafe-backend/internal/checkout"
	"github.com/mayarosales/cakecafe-backend/internal/inquiries"
	pkgerrors "github.com/mayarosales/cakecafe-backend/pkg/errors"
	"github.com/mayarosales/cakecafe-backend/pkg/logger"
	"github.com/mayarosales/cakecafe-backend/pkg/mailer"
	"github.com/mayarosales/cakecafe-backend/pkg/metrics"
)

// ServiceParams wires the webhook service dependencies.
type ServiceParams struct {
	InquiriesRepo inquiries.Repository
	Mailer        mailer.Mailer
	Logger        *logger.Logger
	Metrics       *metrics.StorefrontMetrics
}

// Service applies Stripe checkout events to order inquiries.
type Service struct {
	repo    inquiries.Repository
	mailer  mailer.Mailer
	logg    *logger.Logger
	metrics *metrics.StorefrontMetrics
}

// NewService builds the webhook service.
func NewService(params ServiceParams) (*Service, error) {
	if params.InquiriesRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "inquiries repo required")
	}
	return &Service{
		repo:    params.InquiriesRepo,
		mailer:  params.Mailer,
		logg:    params.Logger,
		metrics: params.Metrics,
	}, nil
}

// HandleEvent dispatches a verified Stripe event. Unknown event types and
// events without an order reference are acknowledged so Stripe stops
// retrying them.
func (s *Service) HandleEvent(ctx context.Context, event *stripe.Event) error {
	if event == nil || event.Data == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "stripe event data required")
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		return s.handleSessionCompleted(ctx, event)
	case stripe.EventTypeCheckoutSessionExpired:
		return s.handleSessionExpired(ctx, event)
	default:
		if s.metrics != nil {
			s.metrics.IncWebhookEvent(string(event.Type), "ignored")
		}
		return nil
	}
}

func (s *Service) handleSessionCompleted(ctx context.Context, event *stripe.Event) error {
	session, inquiryID, ok := s.decodeSession(ctx, event)
	if !ok {
		return nil
	}

	var paymentIntentID *string
	if session.PaymentIntent != nil && session.PaymentIntent.ID != "" {
		paymentIntentID = stripe.String(session.PaymentIntent.ID)
	}

	rows, err := s.repo.MarkPaid(ctx, inquiryID, paymentIntentID, time.Now().UTC())
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marking order paid")
	}
	if rows == 0 {
		// Already paid or not an order; the delivery is a duplicate.
		if s.metrics != nil {
			s.metrics.IncWebhookEvent(string(event.Type), "duplicate")
		}
		return nil
	}

	if s.metrics != nil {
		s.metrics.IncWebhookEvent(string(event.Type), "paid")
	}
	s.sendConfirmation(ctx, inquiryID)
	return nil
}

func (s *Service) handleSessionExpired(ctx context.Context, event *stripe.Event) error {
	_, inquiryID, ok := s.decodeSession(ctx, event)
	if !ok {
		return nil
	}

	rows, err := s.repo.MarkCanceled(ctx, inquiryID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "canceling order")
	}
	if s.metrics != nil {
		outcome := "canceled"
		if rows == 0 {
			outcome = "ignored"
		}
		s.metrics.IncWebhookEvent(string(event.Type), outcome)
	}
	return nil
}

// decodeSession extracts the checkout session and our order id. A missing or
// malformed id is logged and acknowledged, never retried.
func (s *Service) decodeSession(ctx context.Context, event *stripe.Event) (*stripe.CheckoutSession, uuid.UUID, bool) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		if s.logg != nil {
			logCtx := s.logg.WithStripeEventID(ctx, event.ID)
			s.logg.Warn(logCtx, "webhook.session_decode_failed")
		}
		return nil, uuid.Nil, false
	}

	raw := session.Metadata[checkout.MetadataInquiryID]
	if raw == "" {
		raw = session.ClientReferenceID
	}
	if raw == "" {
		if s.logg != nil {
			logCtx := s.logg.WithStripeEventID(ctx, event.ID)
			s.logg.Warn(logCtx, "webhook.order_reference_missing")
		}
		return nil, uuid.Nil, false
	}

	inquiryID, err := uuid.Parse(raw)
	if err != nil {
		if s.logg != nil {
			logCtx := s.logg.WithStripeEventID(ctx, event.ID)
			s.logg.Warn(logCtx, "webhook.order_reference_invalid")
		}
		return nil, uuid.Nil, false
	}
	return &session, inquiryID, true
}

// sendConfirmation emails the buyer after the first PAID transition. Email
// failures are logged and never bubble up to the webhook response.
func (s *Service) sendConfirmation(ctx context.Context, inquiryID uuid.UUID) {
	if s.mailer == nil {
		return
	}

	inquiry, err := s.repo.FindByID(ctx, inquiryID)
	if err != nil {
		s.logEmailFailure(ctx, inquiryID, "webhook.email_lookup_failed", err)
		return
	}

	amount := 0
	if inquiry.AmountCents != nil {
		amount = *inquiry.AmountCents
	}
	msg := mailer.Message{
		To:      inquiry.Email,
		Subject: mailer.OrderConfirmationSubject,
		HTML:    mailer.RenderOrderConfirmation(inquiry.Name, inquiry.ID.String(), amount, inquiry.ItemsJSON),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		if s.metrics != nil {
			s.metrics.IncEmail("failed")
		}
		s.logEmailFailure(ctx, inquiryID, "webhook.email_send_failed", err)
		return
	}
	if s.metrics != nil {
		s.metrics.IncEmail("sent")
	}
}

func (s *Service) logEmailFailure(ctx context.Context, inquiryID uuid.UUID, msg string, err error) {
	if s.logg == nil {
		return
	}
	logCtx := s.logg.WithInquiryID(ctx, inquiryID.String())
	s.logg.Error(logCtx, msg, err)
}
