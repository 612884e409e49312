package mocks

import (
	"context"

	"github.com/rivenwear/storefront-api/internal/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v82"
)

type MockPaymentGateway struct {
	mock.Mock
	domain.PaymentGateway
}

func (m *MockPaymentGateway) CreateCheckoutSession(
	ctx context.Context,
	origin string,
	orderID string,
	items []domain.CartItem) (*stripe.CheckoutSession, error) {

	args := m.Called(ctx, origin, orderID, items)
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}
