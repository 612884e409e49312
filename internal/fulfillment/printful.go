package fulfillment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rivenwear/storefront-api/internal/domain"
)

const (
	defaultBaseURL = "https://api.printful.com"

	requestTimeout  = 10 * time.Second
	maxResponseSize = 1 << 20
)

// PrintfulGateway submits orders to Printful's REST API.
type PrintfulGateway struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewPrintfulGateway(baseURL, token string) *PrintfulGateway {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &PrintfulGateway{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// printfulEnvelope is the standard Printful response wrapper.
type printfulEnvelope struct {
	Code   int                           `json:"code"`
	Result domain.FulfillmentOrderResult `json:"result"`
}

// CreateOrder submits the order to POST /orders. A non-2xx response is
// returned as an error carrying the provider's response body so the caller
// can surface it for diagnosis.
func (g *PrintfulGateway) CreateOrder(
	ctx context.Context,
	order *domain.FulfillmentOrder) (*domain.FulfillmentOrderResult, error) {

	body, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("marshaling printful order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+g.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling printful API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("reading printful response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("printful API error: status %d: %s", resp.StatusCode, respBody)
	}

	var envelope printfulEnvelope

	err = json.Unmarshal(respBody, &envelope)
	if err != nil {
		return nil, fmt.Errorf("decoding printful response: %w", err)
	}

	return &envelope.Result, nil
}
