// internal/services/cart_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/novamart/storefront-api/internal/models"
	"github.com/novamart/storefront-api/internal/store"
	"github.com/novamart/storefront-api/internal/utils"
)

var ErrProductNotFound = errors.New("product not found")

type CartService struct {
	carts   *store.CartStore
	catalog *store.Catalog
}

type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	VariantID string `json:"variant_id,omitempty"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartView is the cart plus its derived values, recomputed on every read
// and mutation.
type CartView struct {
	Cart       *models.Cart `json:"cart"`
	TotalItems int          `json:"total_items"`
	TotalPrice float64      `json:"total_price"`
}

func NewCartService(carts *store.CartStore, catalog *store.Catalog) *CartService {
	return &CartService{
		carts:   carts,
		catalog: catalog,
	}
}

func view(cart *models.Cart) *CartView {
	return &CartView{
		Cart:       cart,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	}
}

// GetCart returns the cart for the id, empty if none exists.
func (s *CartService) GetCart(cartID string) *CartView {
	return view(s.carts.Get(cartID))
}

// AddItem resolves the product (and variant, if requested) from the
// catalog, snapshots name/price/image, and merges the line into the cart.
// An empty cartID starts a new cart; the returned view carries its id.
func (s *CartService) AddItem(cartID string, req *AddItemRequest) (*CartView, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product, ok := s.catalog.Get(req.ProductID)
	if !ok {
		return nil, ErrProductNotFound
	}

	var variant *models.ProductVariant
	if req.VariantID != "" {
		v, ok := product.Variant(req.VariantID)
		if !ok {
			return nil, fmt.Errorf("variant %s not found on product %s", req.VariantID, product.ID)
		}
		variant = &v
	}

	cart := s.carts.Mutate(cartID, func(c *models.Cart) {
		c.AddItem(product.ID, product.Name, product.Price, product.Image, variant)
	})
	return view(cart), nil
}

// UpdateQuantity sets a line's quantity; zero or less removes the line
// and unknown line ids are a silent no-op, matching the aggregator
// contract.
func (s *CartService) UpdateQuantity(cartID, lineID string, quantity int) *CartView {
	cart := s.carts.Mutate(cartID, func(c *models.Cart) {
		c.UpdateQuantity(lineID, quantity)
	})
	return view(cart)
}

func (s *CartService) RemoveItem(cartID, lineID string) *CartView {
	cart := s.carts.Mutate(cartID, func(c *models.Cart) {
		c.RemoveItem(lineID)
	})
	return view(cart)
}

func (s *CartService) ClearCart(cartID string) *CartView {
	cart := s.carts.Mutate(cartID, func(c *models.Cart) {
		c.Clear()
	})
	return view(cart)
}

// Quote prices the cart as it stands, without placing an order.
func (s *CartService) Quote(cartID string) models.OrderTotals {
	cart := s.carts.Get(cartID)
	return CalculateTotals(cart.TotalPrice())
}
