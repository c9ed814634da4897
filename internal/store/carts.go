// internal/store/carts.go
package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/novamart/storefront-api/internal/models"
)

// CartStore keeps carts in memory, keyed by cart id. Each cart belongs to
// one shopping session; mutations on a given cart arrive in dispatch
// order, the lock only guards the map against the concurrent HTTP server.
type CartStore struct {
	mu    sync.Mutex
	carts map[string]*models.Cart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]*models.Cart)}
}

// Get returns a snapshot of the cart, or an empty cart with the given id
// when it does not exist yet.
func (s *CartStore) Get(id string) *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cart, ok := s.carts[id]; ok {
		return cart.Clone()
	}
	return &models.Cart{ID: id}
}

// Mutate runs fn against the cart under the store lock and returns a
// snapshot of the result. An empty id allocates a new cart.
func (s *CartStore) Mutate(id string, fn func(*models.Cart)) *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		id = uuid.NewString()
	}
	cart, ok := s.carts[id]
	if !ok {
		cart = &models.Cart{ID: id}
		s.carts[id] = cart
	}
	fn(cart)
	return cart.Clone()
}

// Drop forgets the cart entirely (distinct from clearing its lines).
func (s *CartStore) Drop(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, id)
}
