package domain

import "errors"

var (
	ErrVariantNotFound        = errors.New("variant not found")
	ErrShippingDetailsMissing = errors.New("checkout session has no shipping details")
	ErrCartMetadataMissing    = errors.New("checkout session metadata has no cart items")
)
