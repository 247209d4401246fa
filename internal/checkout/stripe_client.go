package checkout

import (
	"context"

	"github.com/stripe/stripe-go/v84"
	"github.com/stripe/stripe-go/v84/checkout/session"

	pkgstripe "github.com/mayarosales/cakecafe-backend/pkg/stripe"
)

// SessionCreator exposes the single Stripe operation checkout needs, so the
// service can be tested without the network.
type SessionCreator interface {
	CreateSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type stripeSessionClient struct{}

// NewSessionCreator wraps the shared Stripe client.
func NewSessionCreator(api *pkgstripe.Client) SessionCreator {
	if api == nil {
		return nil
	}
	return &stripeSessionClient{}
}

func (c *stripeSessionClient) CreateSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	if params != nil {
		params.Context = ctx
	}
	return session.New(params)
}
