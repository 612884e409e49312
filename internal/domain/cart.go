package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CartItem is a single storefront product selection. It only lives for the
// duration of one checkout: the list is serialized into the checkout session
// metadata so the webhook can recover it after payment.
type CartItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Image    string          `json:"image"`
	Size     string          `json:"size"`
	Color    string          `json:"color,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

// UnitAmount returns the item price in minor currency units (cents), rounded
// to the nearest cent.
func (i CartItem) UnitAmount() int64 {
	return i.Price.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func MarshalCartItems(items []CartItem) (string, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func UnmarshalCartItems(data string) ([]CartItem, error) {
	var items []CartItem

	err := json.Unmarshal([]byte(data), &items)
	if err != nil {
		return nil, err
	}

	return items, nil
}
