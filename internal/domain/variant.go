package domain

import (
	"encoding/json"
	"fmt"
	"os"
)

// VariantMap translates storefront product identifiers into Printful sync
// variant identifiers. It is loaded once at process start and never mutated.
//
// The per-product sub-map is keyed by "Color-Size" for products sold in
// multiple colors, and by "Size" alone otherwise.
type VariantMap struct {
	products map[string]map[string]string
}

func NewVariantMap(products map[string]map[string]string) *VariantMap {
	return &VariantMap{products: products}
}

// LoadVariantMap reads the product-to-variant mapping from a JSON file of the
// shape {"productId": {"Black-M": "4938271633", "Black-L": "4938271634"}}.
func LoadVariantMap(path string) (*VariantMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading variant map: %w", err)
	}

	var products map[string]map[string]string

	err = json.Unmarshal(data, &products)
	if err != nil {
		return nil, fmt.Errorf("parsing variant map %s: %w", path, err)
	}

	return NewVariantMap(products), nil
}

// Resolve returns the Printful sync variant id for the given product, size
// and optional color. A miss on either the product or the composite key is
// an ErrVariantNotFound naming the offending key.
func (m *VariantMap) Resolve(productID, size, color string) (string, error) {
	product, ok := m.products[productID]
	if !ok {
		return "", fmt.Errorf("%w: unknown product %q", ErrVariantNotFound, productID)
	}

	key := size
	if color != "" {
		key = color + "-" + size
	}

	variantID, ok := product[key]
	if !ok {
		return "", fmt.Errorf("%w: unknown variant %q for product %q", ErrVariantNotFound, key, productID)
	}

	return variantID, nil
}
