// internal/services/pricing.go
package services

import "github.com/novamart/storefront-api/internal/models"

// Checkout pricing. Tax is a fixed 8%; shipping is free strictly above
// $50, so an order of exactly $50.00 still pays the flat fee. The
// boundary is exclusive on purpose and must stay that way.
const (
	TaxRate               = 0.08
	FreeShippingThreshold = 50.0
	StandardShippingFee   = 9.99
)

// CalculateTotals prices a cart subtotal. Pure: no state, same input
// always yields the same breakdown. Amounts are exact float64; rounding
// to cents happens at serialization time.
func CalculateTotals(subtotal float64) models.OrderTotals {
	tax := subtotal * TaxRate
	shipping := StandardShippingFee
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}
	return models.OrderTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal + tax + shipping,
	}
}
