// internal/models/cart.go
package models

// CartItem is a single cart line: one product/variant combination and its
// quantity. Name, price and image are snapshots taken when the item was
// added; later catalog edits do not touch them.
type CartItem struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     float64         `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
	Variant   *ProductVariant `json:"variant,omitempty"`
}

// Cart holds the ordered line items of one shopping session.
type Cart struct {
	ID    string     `json:"id"`
	Items []CartItem `json:"items"`
}

// LineID derives the cart line identifier for a product/variant
// combination. Lines are unique per combination, so adding the same one
// twice merges into a single line.
func LineID(productID string, variant *ProductVariant) string {
	if variant == nil {
		return productID
	}
	return productID + "-" + variant.ID
}

// AddItem merges into an existing line for the same product/variant
// (incrementing its quantity by one) or appends a new line with quantity 1.
// Stock limits are not enforced here.
func (c *Cart) AddItem(productID, name string, unitPrice float64, image string, variant *ProductVariant) {
	lineID := LineID(productID, variant)
	if i := c.findIndex(lineID); i >= 0 {
		c.Items[i].Quantity++
		return
	}
	c.Items = append(c.Items, CartItem{
		ID:        lineID,
		ProductID: productID,
		Name:      name,
		Price:     unitPrice,
		Image:     image,
		Quantity:  1,
		Variant:   variant,
	})
}

// UpdateQuantity replaces a line's quantity. Unknown line ids are a no-op.
// A quantity of zero or less removes the line. Quantities above stock are
// allowed; stock warnings are a presentation concern.
func (c *Cart) UpdateQuantity(lineID string, quantity int) {
	i := c.findIndex(lineID)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
		return
	}
	c.Items[i].Quantity = quantity
}

// RemoveItem deletes the line if present.
func (c *Cart) RemoveItem(lineID string) {
	if i := c.findIndex(lineID); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

// Clear empties all lines.
func (c *Cart) Clear() {
	c.Items = nil
}

// TotalItems is the sum of line quantities.
func (c *Cart) TotalItems() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// TotalPrice is the sum of quantity * unit price over all lines.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, item := range c.Items {
		total += float64(item.Quantity) * item.Price
	}
	return total
}

// Clone returns a deep copy safe to hand out across goroutines.
func (c *Cart) Clone() *Cart {
	out := &Cart{ID: c.ID}
	if c.Items == nil {
		return out
	}
	out.Items = make([]CartItem, len(c.Items))
	copy(out.Items, c.Items)
	for i := range out.Items {
		if v := out.Items[i].Variant; v != nil {
			cloned := *v
			out.Items[i].Variant = &cloned
		}
	}
	return out
}

func (c *Cart) findIndex(lineID string) int {
	for i := range c.Items {
		if c.Items[i].ID == lineID {
			return i
		}
	}
	return -1
}
