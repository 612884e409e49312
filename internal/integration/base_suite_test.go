package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"

	"github.com/rivenwear/storefront-api/internal/app"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
)

const (
	cacheImageName = "redis:7"

	webhookSecret = "whsec_integration_secret"
	printfulToken = "pf_integration_token"
)

var testVariantMap = map[string]map[string]string{
	"P1": {"Black-M": "V123", "Black-L": "V124"},
	"P2": {"S/M": "V200"},
}

type BaseSuite struct {
	suite.Suite
	app            *app.Application
	cacheContainer *RedisContainer
	printful       *printfulStub
}

func (s *BaseSuite) SetupSuite() {
	ctx := context.Background()

	redisContainer, err := getCacheContainer(ctx)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}

	s.cacheContainer = redisContainer
	s.printful = newPrintfulStub()

	cfg := app.Config{
		Port:           3000,
		Env:            "test",
		StoreURL:       "https://store.test",
		VariantMapPath: writeVariantMap(s.T().TempDir()),
		Redis: app.RedisConfig{
			URL: redisContainer.ConnectionString,
		},
		Stripe: app.StripeConfig{
			SecretKey:     "sk_test_integration",
			WebhookSecret: webhookSecret,
		},
		Printful: app.PrintfulConfig{
			APIToken: printfulToken,
			BaseURL:  s.printful.server.URL,
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	testApp, err := app.New(cfg, logger)
	if err != nil {
		log.Printf("cannot initialize app: %s", err)
		return
	}

	s.app = testApp
}

func (s *BaseSuite) TearDownSuite() {
	if s.app != nil {
		s.app.Close()
	}
	if s.printful != nil {
		s.printful.server.Close()
	}
	if s.cacheContainer != nil {
		if err := testcontainers.TerminateContainer(s.cacheContainer.Container); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
}

func writeVariantMap(dir string) string {
	path := filepath.Join(dir, "variants.json")

	data, err := json.Marshal(testVariantMap)
	if err != nil {
		log.Fatalf("failed to marshal variant map: %s", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("failed to write variant map: %s", err)
	}

	return path
}

// printfulStub stands in for the Printful API, recording every order it
// accepts.
type printfulStub struct {
	server *httptest.Server

	mu     sync.Mutex
	orders []map[string]any
}

func newPrintfulStub() *printfulStub {
	stub := &printfulStub{}

	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders" || r.Method != http.MethodPost {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}

		if r.Header.Get("Authorization") != "Bearer "+printfulToken {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var order map[string]any
		if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		stub.mu.Lock()
		stub.orders = append(stub.orders, order)
		orderID := len(stub.orders)
		stub.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"code": 200, "result": {"id": %d, "external_id": %q, "status": "draft"}}`,
			orderID, order["external_id"])
	}))

	return stub
}

func (p *printfulStub) orderCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.orders)
}
