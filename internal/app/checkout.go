package app

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rivenwear/storefront-api/api"
	"github.com/rivenwear/storefront-api/internal/domain"
	"github.com/shopspring/decimal"
)

func (app *Application) CreateCheckoutSessionHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	if app.config.Stripe.SecretKey == "" {
		logger.Error("stripe secret key is not configured")
		app.configurationErrorResponse(w, r)
		return
	}

	var input api.CreateCheckoutSessionRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	items := toCartItems(input.Items)
	orderID := uuid.New().String()

	checkoutSession, err := app.paymentGateway.CreateCheckoutSession(r.Context(), app.checkoutOrigin(r), orderID, items)
	if err != nil {
		logger.Error("failed to create checkout session", "order_id", orderID, "error", err)
		app.errorResponse(w, r, http.StatusInternalServerError, "Checkout session creation failed", err.Error())
		return
	}

	logger.Info("checkout session created", "session_id", checkoutSession.ID, "order_id", orderID, "items", len(items))

	resp := api.CheckoutSessionResponse{
		SessionId: checkoutSession.ID,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// checkoutOrigin picks the base for the success/cancel redirects: the calling
// storefront's Origin header when present, the configured store URL otherwise.
func (app *Application) checkoutOrigin(r *http.Request) string {
	origin := r.Header.Get("Origin")
	if origin == "" || origin == "null" {
		return app.config.StoreURL
	}

	return origin
}

func toCartItems(items []api.CartItem) []domain.CartItem {
	cartItems := make([]domain.CartItem, len(items))

	for i, v := range items {
		item := &cartItems[i]

		item.ID = v.Id
		item.Name = v.Name
		item.Image = v.Image
		item.Size = v.Size
		item.Price = decimal.NewFromFloat(v.Price)
		item.Quantity = v.Quantity

		if v.Color != nil {
			item.Color = *v.Color
		}
	}

	return cartItems
}
