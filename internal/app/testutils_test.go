package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rivenwear/storefront-api/api"
	"github.com/rivenwear/storefront-api/internal/domain"
	"github.com/rivenwear/storefront-api/internal/validator"
)

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		config: Config{
			Env:      "test",
			StoreURL: "https://store.test",
			Stripe: StripeConfig{
				SecretKey:     "sk_test_123",
				WebhookSecret: "whsec_test_secret",
			},
			Printful: PrintfulConfig{
				APIToken: "pf_test_token",
			},
		},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		validator: validator.NewValidator(),
		variants: domain.NewVariantMap(map[string]map[string]string{
			"P1": {"Black-M": "V123", "Black-L": "V124"},
			"P2": {"S/M": "V200"},
		}),
		mailer: &MockMailer{},
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest(method, url, bytes.NewReader(jsonData))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantError string) {
	t.Helper()

	if wantStatus >= 200 && wantStatus < 300 {
		return
	}

	var errorResp api.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	if wantError != "" && errorResp.Error != wantError {
		t.Errorf("Error = %v, want %v", errorResp.Error, wantError)
	}
}

type MockMailer struct {
	mu   sync.Mutex
	sent []string
}

func (m *MockMailer) Send(recipient, templateFile string, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = append(m.sent, recipient)

	return nil
}

func ptr[T any](v T) *T {
	return &v
}
