// internal/services/cart_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novamart/storefront-api/internal/models"
	"github.com/novamart/storefront-api/internal/store"
)

func testCartService() *CartService {
	catalog := store.NewCatalog()
	vPrice := 109.99
	catalog.Seed([]models.Product{
		{
			ID: "1", Name: "Wireless Headphones", Price: 99.99, Image: "headphones.jpg",
			Category: "Electronics", Stock: 5,
			Variants: []models.ProductVariant{
				{ID: "v1", Name: "Color", Value: "Black"},
				{ID: "v2", Name: "Color", Value: "White", Price: &vPrice},
			},
		},
		{ID: "2", Name: "Yoga Mat", Price: 24.99, Category: "Sports", Stock: 10},
	})
	return NewCartService(store.NewCartStore(), catalog)
}

func TestAddItemStartsCartAndSnapshots(t *testing.T) {
	svc := testCartService()

	view, err := svc.AddItem("", &AddItemRequest{ProductID: "1"})
	require.NoError(t, err)

	assert.NotEmpty(t, view.Cart.ID)
	require.Len(t, view.Cart.Items, 1)
	item := view.Cart.Items[0]
	assert.Equal(t, "1", item.ID)
	assert.Equal(t, "Wireless Headphones", item.Name)
	assert.InDelta(t, 99.99, item.Price, 1e-9)
	assert.Equal(t, "headphones.jpg", item.Image)
	assert.Equal(t, 1, view.TotalItems)
}

func TestAddItemMergesRepeatedAdds(t *testing.T) {
	svc := testCartService()

	view, err := svc.AddItem("", &AddItemRequest{ProductID: "1"})
	require.NoError(t, err)
	cartID := view.Cart.ID

	view, err = svc.AddItem(cartID, &AddItemRequest{ProductID: "1"})
	require.NoError(t, err)

	require.Len(t, view.Cart.Items, 1)
	assert.Equal(t, 2, view.Cart.Items[0].Quantity)
	assert.Equal(t, 2, view.TotalItems)
	assert.InDelta(t, 199.98, view.TotalPrice, 1e-9)
}

func TestAddItemResolvesVariant(t *testing.T) {
	svc := testCartService()

	view, err := svc.AddItem("", &AddItemRequest{ProductID: "1", VariantID: "v2"})
	require.NoError(t, err)

	require.Len(t, view.Cart.Items, 1)
	item := view.Cart.Items[0]
	assert.Equal(t, "1-v2", item.ID)
	require.NotNil(t, item.Variant)
	assert.Equal(t, "White", item.Variant.Value)

	// A different variant of the same product is its own line.
	view, err = svc.AddItem(view.Cart.ID, &AddItemRequest{ProductID: "1", VariantID: "v1"})
	require.NoError(t, err)
	assert.Len(t, view.Cart.Items, 2)
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc := testCartService()

	_, err := svc.AddItem("", &AddItemRequest{ProductID: "missing"})
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = svc.AddItem("", &AddItemRequest{ProductID: "1", VariantID: "missing"})
	assert.Error(t, err)

	_, err = svc.AddItem("", &AddItemRequest{})
	assert.Error(t, err, "product_id is required")
}

func TestCartLifecycle(t *testing.T) {
	svc := testCartService()

	view, err := svc.AddItem("", &AddItemRequest{ProductID: "1"})
	require.NoError(t, err)
	cartID := view.Cart.ID

	_, err = svc.AddItem(cartID, &AddItemRequest{ProductID: "2"})
	require.NoError(t, err)

	view = svc.UpdateQuantity(cartID, "1", 3)
	assert.Equal(t, 4, view.TotalItems)

	view = svc.RemoveItem(cartID, "2")
	assert.Len(t, view.Cart.Items, 1)

	view = svc.ClearCart(cartID)
	assert.Empty(t, view.Cart.Items)
	assert.Equal(t, 0, view.TotalItems)
}

func TestQuote(t *testing.T) {
	svc := testCartService()

	// Empty or unknown cart still quotes the flat shipping fee.
	totals := svc.Quote("nope")
	assert.InDelta(t, 9.99, totals.Shipping, 1e-9)
	assert.InDelta(t, 9.99, totals.Total, 1e-9)

	view, err := svc.AddItem("", &AddItemRequest{ProductID: "1"})
	require.NoError(t, err)

	totals = svc.Quote(view.Cart.ID)
	assert.InDelta(t, 99.99, totals.Subtotal, 1e-9)
	assert.InDelta(t, 0, totals.Shipping, 1e-9)
	assert.InDelta(t, 99.99*1.08, totals.Total, 1e-9)
}
