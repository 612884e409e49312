package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rivenwear/storefront-api/api"
	"github.com/rivenwear/storefront-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

const (
	stripeSignatureHeader = "Stripe-Signature"

	// webhookMaxBytes bounds the raw payload read; Stripe event payloads are
	// well under this.
	webhookMaxBytes = 65_536

	eventClaimTTL = 24 * time.Hour
)

func webhookEventKey(eventID string) string {
	return "webhook_event:" + eventID
}

func (app *Application) StripeWebhookHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	if app.config.Stripe.WebhookSecret == "" || app.config.Printful.APIToken == "" {
		logger.Error("webhook signing secret or printful token is not configured")
		app.configurationErrorResponse(w, r)
		return
	}

	// The signature covers the raw bytes; the body must not be decoded
	// before verification.
	r.Body = http.MaxBytesReader(w, r.Body, webhookMaxBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	event, err := webhook.ConstructEvent(payload, r.Header.Get(stripeSignatureHeader), app.config.Stripe.WebhookSecret)
	if err != nil {
		logger.Error("webhook signature verification failed", "error", err)
		app.errorResponse(w, r, http.StatusBadRequest, "Webhook Error", err.Error())
		return
	}

	// Every event type except a completed checkout is acknowledged untouched,
	// so new Stripe event types never fail the request.
	if event.Type != stripe.EventTypeCheckoutSessionCompleted {
		logger.Info("ignoring webhook event", "event_id", event.ID, "type", event.Type)
		app.writeJSON(w, http.StatusOK, api.WebhookResponse{Received: true}, nil)
		return
	}

	// Stripe delivers at least once. Claim the event id before creating the
	// order so a redelivery of a processed event becomes a no-op.
	claimed, err := app.redis.SetNX(r.Context(), webhookEventKey(event.ID), 1, eventClaimTTL).Result()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if !claimed {
		logger.Info("skipping already processed webhook event", "event_id", event.ID)
		app.writeJSON(w, http.StatusOK, api.WebhookResponse{Received: true}, nil)
		return
	}

	// If order creation fails the claim must be released, otherwise the
	// redelivery triggered by our 5xx would be dropped as a duplicate.
	processed := false
	defer func() {
		if processed {
			return
		}

		err := app.redis.Del(context.WithoutCancel(r.Context()), webhookEventKey(event.ID)).Err()
		if err != nil {
			logger.Error("failed to release webhook event claim", "event_id", event.ID, "error", err)
		}
	}()

	var session checkoutSessionSnapshot

	err = json.Unmarshal(event.Data.Raw, &session)
	if err != nil {
		app.serverErrorResponse(w, r, fmt.Errorf("decoding checkout session: %w", err))
		return
	}

	order, err := app.buildFulfillmentOrder(&session)
	if err != nil {
		logger.Error("failed to build fulfillment order", "session_id", session.ID, "error", err)
		app.errorResponse(w, r, http.StatusInternalServerError, "Failed to create Printful order", err.Error())
		return
	}

	result, err := app.fulfillmentGateway.CreateOrder(r.Context(), order)
	if err != nil {
		logger.Error("failed to create printful order", "session_id", session.ID, "error", err)
		app.errorResponse(w, r, http.StatusInternalServerError, "Failed to create Printful order", err.Error())
		return
	}

	processed = true
	logger.Info("printful order created",
		"printful_order_id", result.ID, "order_id", result.ExternalID, "status", result.Status)

	app.notifyOrderCreated(r, result, len(order.Items))

	resp := api.WebhookResponse{
		Received:      true,
		PrintfulOrder: toApiPrintfulOrder(result),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// buildFulfillmentOrder maps a completed checkout session to a Printful
// order. The cart comes from the session metadata, since the storefront's
// item detail is not preserved anywhere else.
func (app *Application) buildFulfillmentOrder(session *checkoutSessionSnapshot) (*domain.FulfillmentOrder, error) {
	cartJSON, ok := session.Metadata["items"]
	if !ok || cartJSON == "" {
		return nil, domain.ErrCartMetadataMissing
	}

	items, err := domain.UnmarshalCartItems(cartJSON)
	if err != nil {
		return nil, fmt.Errorf("parsing cart metadata: %w", err)
	}

	shipping, err := extractShippingDetails(session)
	if err != nil {
		return nil, err
	}

	orderItems := make([]domain.FulfillmentItem, len(items))
	for i, item := range items {
		variantID, err := app.variants.Resolve(item.ID, item.Size, item.Color)
		if err != nil {
			// No partial orders. A single unresolved item aborts the whole
			// submission.
			return nil, err
		}

		orderItems[i] = domain.FulfillmentItem{
			SyncVariantID: variantID,
			Quantity:      item.Quantity,
			RetailPrice:   item.Price.StringFixed(2),
		}
	}

	return &domain.FulfillmentOrder{
		ExternalID: session.Metadata["order_id"],
		Recipient: domain.Recipient{
			Name:        shipping.Name,
			Address1:    shipping.Address.Line1,
			Address2:    shipping.Address.Line2,
			City:        shipping.Address.City,
			StateCode:   shipping.Address.State,
			CountryCode: shipping.Address.Country,
			Zip:         shipping.Address.PostalCode,
		},
		Items: orderItems,
		RetailCosts: domain.RetailCosts{
			Subtotal: minorToMajor(session.AmountSubtotal),
			Shipping: minorToMajor(session.TotalDetails.AmountShipping),
			Tax:      minorToMajor(session.TotalDetails.AmountTax),
		},
	}, nil
}

// minorToMajor renders a Stripe amount in minor units (cents) as a decimal
// string in major units, e.g. 2599 -> "25.99".
func minorToMajor(amount int64) string {
	return decimal.NewFromInt(amount).Div(decimal.NewFromInt(100)).StringFixed(2)
}

func toApiPrintfulOrder(result *domain.FulfillmentOrderResult) *api.PrintfulOrder {
	order := &api.PrintfulOrder{
		Id:     result.ID,
		Status: result.Status,
	}

	if result.ExternalID != "" {
		order.ExternalId = &result.ExternalID
	}

	return order
}

func (app *Application) notifyOrderCreated(r *http.Request, result *domain.FulfillmentOrderResult, itemCount int) {
	recipient := app.config.SMTP.OrderRecipient
	if recipient == "" {
		return
	}

	go func(ctx context.Context) {
		// new logger for this goroutine, inheriting context from the request
		gLogger := app.contextGetLogger(r.WithContext(ctx))

		defer func() {
			if err := recover(); err != nil {
				gLogger.Error("panic occurred during sending order notification", "panic", err)
			}
		}()

		data := map[string]any{
			"PrintfulOrderID": result.ID,
			"ExternalID":      result.ExternalID,
			"Status":          result.Status,
			"ItemCount":       itemCount,
		}

		err := app.mailer.Send(recipient, "order_created.tmpl", data)
		if err != nil {
			gLogger.Error("failed to send order notification", "error", err)
		} else {
			gLogger.Info("order notification sent", "printful_order_id", result.ID)
		}
	}(context.WithoutCancel(r.Context()))
}
