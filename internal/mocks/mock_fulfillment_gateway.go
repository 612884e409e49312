package mocks

import (
	"context"

	"github.com/rivenwear/storefront-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockFulfillmentGateway struct {
	mock.Mock
	domain.FulfillmentGateway
}

func (m *MockFulfillmentGateway) CreateOrder(
	ctx context.Context,
	order *domain.FulfillmentOrder) (*domain.FulfillmentOrderResult, error) {

	args := m.Called(ctx, order)
	return args.Get(0).(*domain.FulfillmentOrderResult), args.Error(1)
}
