package domain

import "context"

type FulfillmentGateway interface {
	CreateOrder(ctx context.Context, order *FulfillmentOrder) (*FulfillmentOrderResult, error)
}
