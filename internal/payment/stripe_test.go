package payment

import (
	"testing"

	"github.com/rivenwear/storefront-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToLineItems(t *testing.T) {
	items := []domain.CartItem{
		{
			ID:       "P1",
			Name:     "Riven Logo Tee",
			Image:    "https://cdn.rivenwear.com/tee.png",
			Size:     "M",
			Color:    "Black",
			Price:    decimal.NewFromFloat(25.99),
			Quantity: 2,
		},
		{
			ID:       "P2",
			Name:     "Riven Beanie",
			Image:    "https://cdn.rivenwear.com/beanie.png",
			Size:     "S/M",
			Price:    decimal.NewFromFloat(14.5),
			Quantity: 1,
		},
	}

	lineItems := toLineItems(items)
	require.Len(t, lineItems, 2)

	first := lineItems[0]
	assert.Equal(t, int64(2599), *first.PriceData.UnitAmount)
	assert.Equal(t, int64(2), *first.Quantity)
	assert.Equal(t, "usd", *first.PriceData.Currency)
	assert.Equal(t, "Riven Logo Tee", *first.PriceData.ProductData.Name)
	assert.Equal(t, "P1", first.PriceData.ProductData.Metadata["product_id"])
	assert.Equal(t, "M", first.PriceData.ProductData.Metadata["size"])
	assert.Equal(t, "Black", first.PriceData.ProductData.Metadata["color"])

	second := lineItems[1]
	assert.Equal(t, int64(1450), *second.PriceData.UnitAmount)
	assert.Equal(t, int64(1), *second.Quantity)
	assert.Empty(t, second.PriceData.ProductData.Metadata["color"])
}

func TestCartItemUnitAmountRounding(t *testing.T) {
	tests := []struct {
		name  string
		price decimal.Decimal
		want  int64
	}{
		{name: "exact cents", price: decimal.NewFromFloat(19.99), want: 1999},
		{name: "whole dollars", price: decimal.NewFromInt(20), want: 2000},
		{name: "sub-cent rounds up", price: decimal.RequireFromString("10.005"), want: 1001},
		{name: "sub-cent rounds down", price: decimal.RequireFromString("10.004"), want: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := domain.CartItem{Price: tt.price}
			assert.Equal(t, tt.want, item.UnitAmount())
		})
	}
}
