package fulfillment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rivenwear/storefront-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() *domain.FulfillmentOrder {
	return &domain.FulfillmentOrder{
		ExternalID: "ord_123",
		Recipient: domain.Recipient{
			Name:        "Jamie Doe",
			Address1:    "1 Main St",
			City:        "Portland",
			StateCode:   "OR",
			CountryCode: "US",
			Zip:         "97201",
		},
		Items: []domain.FulfillmentItem{
			{SyncVariantID: "V123", Quantity: 2, RetailPrice: "25.99"},
		},
		RetailCosts: domain.RetailCosts{Subtotal: "51.98", Shipping: "5.99", Tax: "1.20"},
	}
}

func TestPrintfulGatewayCreateOrder(t *testing.T) {
	t.Run("submits order and decodes the response envelope", func(t *testing.T) {
		var gotAuth string
		var gotOrder domain.FulfillmentOrder

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/orders", r.URL.Path)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))
			gotAuth = r.Header.Get("Authorization")

			err := json.NewDecoder(r.Body).Decode(&gotOrder)
			require.NoError(t, err)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"code": 200, "result": {"id": 987, "external_id": "ord_123", "status": "draft"}}`))
		}))
		defer server.Close()

		gateway := NewPrintfulGateway(server.URL, "test-token")

		result, err := gateway.CreateOrder(context.Background(), testOrder())
		require.NoError(t, err)

		assert.Equal(t, "Bearer test-token", gotAuth)
		assert.Equal(t, "ord_123", gotOrder.ExternalID)
		assert.Equal(t, "V123", gotOrder.Items[0].SyncVariantID)
		assert.Equal(t, "51.98", gotOrder.RetailCosts.Subtotal)

		assert.Equal(t, int64(987), result.ID)
		assert.Equal(t, "draft", result.Status)
	})

	t.Run("surfaces the provider error body on non-2xx responses", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"code": 400, "error": {"message": "Invalid variant"}}`))
		}))
		defer server.Close()

		gateway := NewPrintfulGateway(server.URL, "test-token")

		_, err := gateway.CreateOrder(context.Background(), testOrder())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 400")
		assert.Contains(t, err.Error(), "Invalid variant")
	})

	t.Run("fails when the server is unreachable", func(t *testing.T) {
		gateway := NewPrintfulGateway("http://127.0.0.1:1", "test-token")

		_, err := gateway.CreateOrder(context.Background(), testOrder())
		assert.Error(t, err)
	})
}
