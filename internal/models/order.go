// internal/models/order.go
package models

import (
	"encoding/json"
	"math"
	"time"
)

// BillingInfo is the transient checkout form state. It is validated and
// discarded once the order completes; nothing here is persisted.
type BillingInfo struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	ZipCode   string `json:"zip_code" validate:"required"`
	Country   string `json:"country"`

	CardNumber string `json:"card_number" validate:"required"`
	ExpiryDate string `json:"expiry_date" validate:"required"`
	CVV        string `json:"cvv" validate:"required"`
	CardName   string `json:"card_name" validate:"required"`
}

// OrderTotals is the priced breakdown of a cart. Values stay exact
// float64 internally; rounding to cents happens only when serialized.
type OrderTotals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MarshalJSON rounds each amount to two decimal places at display time.
func (t OrderTotals) MarshalJSON() ([]byte, error) {
	type wire OrderTotals
	return json.Marshal(wire{
		Subtotal: round2(t.Subtotal),
		Tax:      round2(t.Tax),
		Shipping: round2(t.Shipping),
		Total:    round2(t.Total),
	})
}

// Order is the summary returned after a successful checkout. Orders are
// not persisted; the confirmation response is their whole lifecycle.
type Order struct {
	ID       string      `json:"id"`
	Items    []CartItem  `json:"items"`
	Totals   OrderTotals `json:"totals"`
	PlacedAt time.Time   `json:"placed_at"`
}
