// internal/store/catalog.go
package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/novamart/storefront-api/internal/models"
)

// Catalog is the in-memory product collection. Products keep insertion
// order; any sorting is a presentation concern. There is deliberately no
// referential integrity with carts: cart lines hold snapshots, so
// deleting a product leaves existing lines untouched.
type Catalog struct {
	mu       sync.RWMutex
	products []models.Product
	index    map[string]int
}

func NewCatalog() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Seed replaces the catalog contents with the given products.
func (c *Catalog) Seed(products []models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.products = make([]models.Product, len(products))
	copy(c.products, products)
	c.index = make(map[string]int, len(products))
	for i, p := range c.products {
		c.index[p.ID] = i
	}
}

// List returns a copy of all products in insertion order.
func (c *Catalog) List() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Get(id string) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i], true
}

// Add assigns a fresh identifier and appends the product.
func (c *Catalog) Add(p models.Product) models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	p.ID = uuid.NewString()
	c.index[p.ID] = len(c.products)
	c.products = append(c.products, p)
	return p
}

// Update merges the patch into the identified product. Unknown ids fail
// silently; the bool reports whether anything was updated.
func (c *Catalog) Update(id string, patch *models.ProductPatch) (models.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return models.Product{}, false
	}
	patch.Apply(&c.products[i])
	return c.products[i], true
}

// Delete removes the product if present.
func (c *Catalog) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return false
	}
	c.products = append(c.products[:i], c.products[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.products); j++ {
		c.index[c.products[j].ID] = j
	}
	return true
}

// Categories returns the distinct product categories in first-seen order.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
