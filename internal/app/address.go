package app

import "github.com/rivenwear/storefront-api/internal/domain"

// checkoutSessionSnapshot is the slice of Stripe's checkout.session object
// the webhook needs. It is decoded from the raw event payload rather than the
// SDK's struct so the historical shipping-address shapes stay reachable.
type checkoutSessionSnapshot struct {
	ID             string            `json:"id"`
	AmountSubtotal int64             `json:"amount_subtotal"`
	TotalDetails   totalDetails      `json:"total_details"`
	Metadata       map[string]string `json:"metadata"`

	// The shipping address moved over successive Stripe API versions. All
	// three historical locations are decoded; extraction tries them newest
	// first.
	CollectedInformation *collectedInformation `json:"collected_information"`
	ShippingDetails      *shippingDetails      `json:"shipping_details"`
	Shipping             *shippingDetails      `json:"shipping"`
}

type totalDetails struct {
	AmountShipping int64 `json:"amount_shipping"`
	AmountTax      int64 `json:"amount_tax"`
}

type collectedInformation struct {
	ShippingDetails *shippingDetails `json:"shipping_details"`
}

type shippingDetails struct {
	Name    string          `json:"name"`
	Address shippingAddress `json:"address"`
}

type shippingAddress struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// shippingDetailsExtractors holds the known payload shapes in priority order:
// the 2026+ collected_information location first, then the two older ones.
var shippingDetailsExtractors = []func(*checkoutSessionSnapshot) *shippingDetails{
	func(s *checkoutSessionSnapshot) *shippingDetails {
		if s.CollectedInformation == nil {
			return nil
		}
		return s.CollectedInformation.ShippingDetails
	},
	func(s *checkoutSessionSnapshot) *shippingDetails {
		return s.ShippingDetails
	},
	func(s *checkoutSessionSnapshot) *shippingDetails {
		return s.Shipping
	},
}

func extractShippingDetails(session *checkoutSessionSnapshot) (*shippingDetails, error) {
	for _, extract := range shippingDetailsExtractors {
		if details := extract(session); details != nil {
			return details, nil
		}
	}

	return nil, domain.ErrShippingDetailsMissing
}
