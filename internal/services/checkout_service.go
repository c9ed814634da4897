// internal/services/checkout_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/novamart/storefront-api/internal/config"
	"github.com/novamart/storefront-api/internal/models"
	"github.com/novamart/storefront-api/internal/store"
	"github.com/novamart/storefront-api/internal/utils"
)

var ErrEmptyCart = errors.New("cart is empty")

// CheckoutService turns a cart into an order confirmation. Payment is
// simulated: a fixed processing delay, then unconditional success. No
// billing data outlives the call.
type CheckoutService struct {
	carts *store.CartStore
	cfg   *config.Config
}

type CheckoutRequest struct {
	Billing models.BillingInfo `json:"billing"`
}

func NewCheckoutService(carts *store.CartStore, cfg *config.Config) *CheckoutService {
	return &CheckoutService{
		carts: carts,
		cfg:   cfg,
	}
}

// PlaceOrder validates the billing form, simulates payment processing,
// prices the cart, clears it, and returns the order summary. Validation
// failures surface per-field; the handler maps them to a blocking 400.
func (s *CheckoutService) PlaceOrder(cartID string, req *CheckoutRequest) (*models.Order, error) {
	req.Billing.CardNumber = NormalizeCardNumber(req.Billing.CardNumber)
	req.Billing.ExpiryDate = NormalizeExpiryDate(req.Billing.ExpiryDate)

	if err := utils.ValidateStruct(&req.Billing); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	cart := s.carts.Get(cartID)
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	// Simulate payment processing; always succeeds, no cancellation.
	time.Sleep(s.cfg.Simulation.PaymentDelay)

	order := &models.Order{
		ID:       uuid.NewString(),
		Items:    cart.Items,
		Totals:   CalculateTotals(cart.TotalPrice()),
		PlacedAt: time.Now(),
	}

	s.carts.Mutate(cartID, func(c *models.Cart) {
		c.Clear()
	})

	logrus.WithFields(logrus.Fields{
		"order_id": order.ID,
		"items":    len(order.Items),
		"total":    order.Totals.Total,
	}).Info("Order completed")

	return order, nil
}

// NormalizeCardNumber strips everything but digits and regroups them in
// blocks of four, the same shaping the checkout form applies as the
// user types.
func NormalizeCardNumber(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	raw := digits.String()
	if len(raw) > 16 {
		raw = raw[:16]
	}

	var parts []string
	for i := 0; i < len(raw); i += 4 {
		end := i + 4
		if end > len(raw) {
			end = len(raw)
		}
		parts = append(parts, raw[i:end])
	}
	return strings.Join(parts, " ")
}

// NormalizeExpiryDate reduces input to digits and formats as MM/YY.
func NormalizeExpiryDate(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	raw := digits.String()
	if len(raw) >= 2 {
		end := len(raw)
		if end > 4 {
			end = 4
		}
		return raw[:2] + "/" + raw[2:end]
	}
	return raw
}
