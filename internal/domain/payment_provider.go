package domain

import (
	"context"

	"github.com/stripe/stripe-go/v82"
)

type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, origin, orderID string, items []CartItem) (*stripe.CheckoutSession, error)
}
