package payment

import (
	"context"

	"github.com/rivenwear/storefront-api/internal/domain"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

const (
	successPath = "/success?session_id={CHECKOUT_SESSION_ID}"
	cancelPath  = "/cart"
)

// allowedShippingCountries is the fixed set of countries the store ships to.
var allowedShippingCountries = []string{"US", "CA"}

type StripeGateway struct{}

func NewStripeGateway() *StripeGateway {
	return &StripeGateway{}
}

// CreateCheckoutSession opens a hosted Stripe checkout session for the cart.
// The serialized cart travels in the session metadata: the webhook has no
// other durable record of the items once payment completes.
func (g *StripeGateway) CreateCheckoutSession(
	ctx context.Context,
	origin string,
	orderID string,
	items []domain.CartItem) (*stripe.CheckoutSession, error) {

	cartJSON, err := domain.MarshalCartItems(items)
	if err != nil {
		return nil, err
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          toLineItems(items),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(origin + successPath),
		CancelURL:          stripe.String(origin + cancelPath),
		ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(allowedShippingCountries),
		},
		Metadata: map[string]string{
			"order_id": orderID,
			"items":    cartJSON,
		},
	}
	params.Context = ctx

	return session.New(params)
}

func toLineItems(items []domain.CartItem) []*stripe.CheckoutSessionLineItemParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, len(items))

	for i, item := range items {
		lineItems[i] = &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(string(stripe.CurrencyUSD)),
				UnitAmount: stripe.Int64(item.UnitAmount()),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:   stripe.String(item.Name),
					Images: stripe.StringSlice([]string{item.Image}),
					Metadata: map[string]string{
						"product_id": item.ID,
						"size":       item.Size,
						"color":      item.Color,
					},
				},
			},
			Quantity: stripe.Int64(item.Quantity),
		}
	}

	return lineItems
}
