// internal/models/product.go
package models

// ProductVariant is a selectable product option on a single axis
// (e.g. Color: Red). Variants are immutable once created; edits replace
// the whole list.
type ProductVariant struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Value string   `json:"value"`
	Price *float64 `json:"price,omitempty"`
}

type Product struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Price          float64          `json:"price"`
	OriginalPrice  *float64         `json:"original_price,omitempty"`
	Image          string           `json:"image"`
	Images         []string         `json:"images"`
	Category       string           `json:"category"`
	Variants       []ProductVariant `json:"variants"`
	Stock          int              `json:"stock"`
	Description    string           `json:"description"`
	Features       []string         `json:"features"`
	Specifications Specifications   `json:"specifications"`
	Rating         float64          `json:"rating"`
	Reviews        int              `json:"reviews"`
	Brand          string           `json:"brand"`
}

// Variant returns the variant with the given id, if any.
func (p *Product) Variant(id string) (ProductVariant, bool) {
	for _, v := range p.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return ProductVariant{}, false
}

// InStock reports whether any inventory remains. Display-only: the cart
// never enforces stock limits.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// ProductPatch carries a partial product update; nil fields are left
// untouched. Variants and the other slice/map fields are replaced
// wholesale when present.
type ProductPatch struct {
	Name           *string           `json:"name,omitempty"`
	Price          *float64          `json:"price,omitempty" validate:"omitempty,gte=0"`
	OriginalPrice  *float64          `json:"original_price,omitempty"`
	Image          *string           `json:"image,omitempty"`
	Images         *[]string         `json:"images,omitempty"`
	Category       *string           `json:"category,omitempty"`
	Variants       *[]ProductVariant `json:"variants,omitempty"`
	Stock          *int              `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Description    *string           `json:"description,omitempty"`
	Features       *[]string         `json:"features,omitempty"`
	Specifications *Specifications   `json:"specifications,omitempty"`
	Rating         *float64          `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Reviews        *int              `json:"reviews,omitempty" validate:"omitempty,gte=0"`
	Brand          *string           `json:"brand,omitempty"`
}

// Apply merges the patch into the product.
func (patch *ProductPatch) Apply(p *Product) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.OriginalPrice != nil {
		p.OriginalPrice = patch.OriginalPrice
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Images != nil {
		p.Images = *patch.Images
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Variants != nil {
		p.Variants = *patch.Variants
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Features != nil {
		p.Features = *patch.Features
	}
	if patch.Specifications != nil {
		p.Specifications = *patch.Specifications
	}
	if patch.Rating != nil {
		p.Rating = *patch.Rating
	}
	if patch.Reviews != nil {
		p.Reviews = *patch.Reviews
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
}
