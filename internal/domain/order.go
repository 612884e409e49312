package domain

// FulfillmentOrder is the order submitted to Printful once a checkout session
// completes. Field names follow Printful's order creation API; amounts are in
// major currency units as decimal strings.
type FulfillmentOrder struct {
	ExternalID  string            `json:"external_id,omitempty"`
	Recipient   Recipient         `json:"recipient"`
	Items       []FulfillmentItem `json:"items"`
	RetailCosts RetailCosts       `json:"retail_costs"`
}

type Recipient struct {
	Name        string `json:"name"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2,omitempty"`
	City        string `json:"city"`
	StateCode   string `json:"state_code"`
	CountryCode string `json:"country_code"`
	Zip         string `json:"zip"`
}

type FulfillmentItem struct {
	SyncVariantID string `json:"sync_variant_id"`
	Quantity      int64  `json:"quantity"`
	RetailPrice   string `json:"retail_price"`
}

type RetailCosts struct {
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Tax      string `json:"tax"`
}

// FulfillmentOrderResult is the subset of Printful's order resource the
// webhook reports back to Stripe.
type FulfillmentOrderResult struct {
	ID         int64  `json:"id"`
	ExternalID string `json:"external_id"`
	Status     string `json:"status"`
}
