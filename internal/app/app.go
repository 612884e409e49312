package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
	"github.com/rivenwear/storefront-api/api"
	"github.com/rivenwear/storefront-api/internal/domain"
	"github.com/rivenwear/storefront-api/internal/fulfillment"
	"github.com/rivenwear/storefront-api/internal/mailer"
	"github.com/rivenwear/storefront-api/internal/payment"
	appvalidator "github.com/rivenwear/storefront-api/internal/validator"
	"github.com/rivenwear/storefront-api/internal/vcs"
	"github.com/stripe/stripe-go/v82"
)

var (
	version = vcs.Version()
)

type Application struct {
	config    Config
	logger    *slog.Logger
	validator *validator.Validate
	redis     redis.UniversalClient
	variants  *domain.VariantMap
	mailer    mailer.Mailer

	paymentGateway     domain.PaymentGateway
	fulfillmentGateway domain.FulfillmentGateway
}

type Config struct {
	Port             int
	Env              string
	StoreURL         string
	VariantMapPath   string
	OtelCollectorURL string
	Redis            RedisConfig
	Stripe           StripeConfig
	Printful         PrintfulConfig
	SMTP             SMTPConfig
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
}

type PrintfulConfig struct {
	APIToken string
	BaseURL  string
}

type SMTPConfig struct {
	Host           string
	Port           int
	Username       string
	Password       string
	Sender         string
	OrderRecipient string
}

func Run() error {
	_ = godotenv.Load()

	var cfg Config

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.StoreURL, "store-url", envString("STORE_URL", "https://rivenwear.com"),
		"storefront base URL used for checkout redirects when the request carries no Origin")
	flag.StringVar(&cfg.VariantMapPath, "variant-map", envString("VARIANT_MAP_PATH", "variants.json"),
		"path to the product-to-Printful-variant mapping file")

	flag.StringVar(&cfg.Redis.URL, "redis-url", os.Getenv("REDIS_URL"), "Redis URL")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.Stripe.SecretKey, "stripe-key", os.Getenv("STRIPE_SECRET_KEY"), "Stripe secret key")
	flag.StringVar(&cfg.Stripe.WebhookSecret, "stripe-webhook-secret", os.Getenv("STRIPE_WEBHOOK_SECRET"), "Stripe webhook signing secret")

	flag.StringVar(&cfg.Printful.APIToken, "printful-token", os.Getenv("PRINTFUL_API_TOKEN"), "Printful API token")
	flag.StringVar(&cfg.Printful.BaseURL, "printful-url", os.Getenv("PRINTFUL_API_URL"), "Printful API base URL (defaults to the public API)")

	flag.StringVar(&cfg.SMTP.Host, "smtp-host", os.Getenv("SMTP_HOST"), "SMTP host")
	flag.IntVar(&cfg.SMTP.Port, "smtp-port", 2525, "SMTP port")
	flag.StringVar(&cfg.SMTP.Username, "smtp-username", os.Getenv("SMTP_USERNAME"), "SMTP username")
	flag.StringVar(&cfg.SMTP.Password, "smtp-password", os.Getenv("SMTP_PASSWORD"), "SMTP password")
	flag.StringVar(&cfg.SMTP.Sender, "smtp-sender", "RivenWear <no-reply@rivenwear.com>", "SMTP sender")
	flag.StringVar(&cfg.SMTP.OrderRecipient, "smtp-order-recipient", os.Getenv("ORDER_NOTIFICATION_EMAIL"),
		"address notified of new fulfillment orders (empty disables notifications)")

	flag.StringVar(&cfg.OtelCollectorURL, "otel-collector-url", os.Getenv("OTEL_COLLECTOR_URL"), "OpenTelemetry collector URL")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app, err := New(cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.run()
}

func New(cfg Config, logger *slog.Logger) (*Application, error) {
	stripe.Key = cfg.Stripe.SecretKey

	variants, err := domain.LoadVariantMap(cfg.VariantMapPath)
	if err != nil {
		return nil, err
	}

	redisClient, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	app := &Application{
		config:             cfg,
		logger:             logger,
		validator:          appvalidator.NewValidator(),
		redis:              redisClient,
		variants:           variants,
		mailer:             mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Sender),
		paymentGateway:     payment.NewStripeGateway(),
		fulfillmentGateway: fulfillment.NewPrintfulGateway(cfg.Printful.BaseURL, cfg.Printful.APIToken),
	}

	return app, nil
}

func (app *Application) Close() {
	if app.redis != nil {
		app.redis.Close()
	}
}

func newRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	err = redisotel.InstrumentTracing(rdb)
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("storefront-api", otelchi.WithChiRoutes(r)))
	r.Use(app.requestLogger)
	r.Use(app.recoverPanic)
	r.Use(app.enableCORS)

	return api.HandlerFromMux(app, r)
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
