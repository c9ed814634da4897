// internal/models/cart_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddItemMergesSameLine(t *testing.T) {
	cart := &Cart{}

	cart.AddItem("p1", "Headphones", 99.99, "img.jpg", nil)
	cart.AddItem("p1", "Headphones", 99.99, "img.jpg", nil)
	cart.AddItem("p1", "Headphones", 99.99, "img.jpg", nil)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 3, cart.TotalItems())
}

func TestAddItemVariantsAreDistinctLines(t *testing.T) {
	cart := &Cart{}
	black := &ProductVariant{ID: "v1", Name: "Color", Value: "Black"}
	white := &ProductVariant{ID: "v2", Name: "Color", Value: "White"}

	cart.AddItem("p1", "Headphones", 99.99, "img.jpg", black)
	cart.AddItem("p1", "Headphones", 99.99, "img.jpg", white)
	cart.AddItem("p1", "Headphones", 99.99, "img.jpg", nil)
	cart.AddItem("p1", "Headphones", 99.99, "img.jpg", black)

	assert.Len(t, cart.Items, 3)
	assert.Equal(t, "p1-v1", cart.Items[0].ID)
	assert.Equal(t, "p1-v2", cart.Items[1].ID)
	assert.Equal(t, "p1", cart.Items[2].ID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestAddItemKeepsInsertionOrder(t *testing.T) {
	cart := &Cart{}

	cart.AddItem("p1", "First", 1, "", nil)
	cart.AddItem("p2", "Second", 2, "", nil)
	cart.AddItem("p3", "Third", 3, "", nil)
	// Merging into an existing line must not reorder it.
	cart.AddItem("p1", "First", 1, "", nil)

	assert.Equal(t, []string{"p1", "p2", "p3"}, []string{cart.Items[0].ID, cart.Items[1].ID, cart.Items[2].ID})
}

func TestUpdateQuantity(t *testing.T) {
	cart := &Cart{}
	cart.AddItem("p1", "Headphones", 99.99, "", nil)
	cart.AddItem("p2", "Keyboard", 49.99, "", nil)

	cart.UpdateQuantity("p1", 5)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	// Zero removes the line.
	cart.UpdateQuantity("p1", 0)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ID)

	// Negative behaves like zero.
	cart.UpdateQuantity("p2", -3)
	assert.Empty(t, cart.Items)
}

func TestUpdateQuantityUnknownLineIsNoOp(t *testing.T) {
	cart := &Cart{}
	cart.AddItem("p1", "Headphones", 99.99, "", nil)

	cart.UpdateQuantity("missing", 7)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	cart := &Cart{}
	cart.AddItem("p1", "Headphones", 99.99, "", nil)
	cart.AddItem("p2", "Keyboard", 49.99, "", nil)

	cart.RemoveItem("p1")
	assert.Len(t, cart.Items, 1)

	// Removing a missing line changes nothing.
	cart.RemoveItem("p1")
	assert.Len(t, cart.Items, 1)
}

func TestClear(t *testing.T) {
	cart := &Cart{}
	cart.AddItem("p1", "Headphones", 99.99, "", nil)
	cart.AddItem("p2", "Keyboard", 49.99, "", nil)

	cart.Clear()

	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.TotalItems())
	assert.Equal(t, 0.0, cart.TotalPrice())
}

func TestTotals(t *testing.T) {
	cart := &Cart{}
	cart.AddItem("p1", "Headphones", 99.99, "", nil)
	cart.AddItem("p1", "Headphones", 99.99, "", nil)
	cart.AddItem("p2", "Keyboard", 49.99, "", nil)

	assert.Equal(t, 3, cart.TotalItems())
	assert.InDelta(t, 2*99.99+49.99, cart.TotalPrice(), 1e-9)

	// Reading totals twice gives the same answer; derivation has no side
	// effects.
	assert.Equal(t, cart.TotalItems(), cart.TotalItems())
	assert.Equal(t, cart.TotalPrice(), cart.TotalPrice())
}

func TestCloneIsIndependent(t *testing.T) {
	cart := &Cart{ID: "c1"}
	variant := &ProductVariant{ID: "v1", Name: "Color", Value: "Black"}
	cart.AddItem("p1", "Headphones", 99.99, "", variant)

	clone := cart.Clone()
	clone.Items[0].Quantity = 42
	clone.Items[0].Variant.Value = "White"

	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, "Black", cart.Items[0].Variant.Value)
	assert.Equal(t, "c1", clone.ID)
}

func TestLineID(t *testing.T) {
	assert.Equal(t, "p1", LineID("p1", nil))
	assert.Equal(t, "p1-v2", LineID("p1", &ProductVariant{ID: "v2"}))
}
