// internal/services/catalog_service.go
package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/novamart/storefront-api/internal/models"
	"github.com/novamart/storefront-api/internal/store"
	"github.com/novamart/storefront-api/internal/utils"
)

type CatalogService struct {
	catalog *store.Catalog
}

type CreateProductRequest struct {
	Name           string                  `json:"name" validate:"required"`
	Price          float64                 `json:"price" validate:"gte=0"`
	OriginalPrice  *float64                `json:"original_price,omitempty"`
	Image          string                  `json:"image"`
	Images         []string                `json:"images"`
	Category       string                  `json:"category" validate:"required"`
	Variants       []models.ProductVariant `json:"variants"`
	Stock          int                     `json:"stock" validate:"gte=0"`
	Description    string                  `json:"description"`
	Features       []string                `json:"features"`
	Specifications models.Specifications   `json:"specifications"`
	Rating         float64                 `json:"rating" validate:"gte=0,lte=5"`
	Reviews        int                     `json:"reviews" validate:"gte=0"`
	Brand          string                  `json:"brand"`
}

func NewCatalogService(catalog *store.Catalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// SearchProducts filters by name substring and category, sorts, and
// paginates. Sort values mirror the shop page: name (default),
// price-asc, price-desc.
func (s *CatalogService) SearchProducts(params utils.PaginationParams) ([]models.Product, int64) {
	products := s.catalog.List()

	if params.Search != "" || params.Category != "" {
		needle := strings.ToLower(params.Search)
		filtered := products[:0]
		for _, p := range products {
			if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
				continue
			}
			if params.Category != "" && p.Category != params.Category {
				continue
			}
			filtered = append(filtered, p)
		}
		products = filtered
	}

	switch params.Sort {
	case "price-asc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case "price-desc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case "name":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	}

	total := int64(len(products))
	lo, hi := utils.SliceBounds(len(products), params)
	return products[lo:hi], total
}

func (s *CatalogService) GetProduct(id string) (models.Product, error) {
	product, ok := s.catalog.Get(id)
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return product, nil
}

func (s *CatalogService) CreateProduct(req *CreateProductRequest) (models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return models.Product{}, fmt.Errorf("validation failed: %w", err)
	}

	return s.catalog.Add(models.Product{
		Name:           req.Name,
		Price:          req.Price,
		OriginalPrice:  req.OriginalPrice,
		Image:          req.Image,
		Images:         req.Images,
		Category:       req.Category,
		Variants:       req.Variants,
		Stock:          req.Stock,
		Description:    req.Description,
		Features:       req.Features,
		Specifications: req.Specifications,
		Rating:         req.Rating,
		Reviews:        req.Reviews,
		Brand:          req.Brand,
	}), nil
}

// UpdateProduct merges the patch into the product. Unknown ids fail
// silently at the store level; callers that care get ErrProductNotFound.
func (s *CatalogService) UpdateProduct(id string, patch *models.ProductPatch) (models.Product, error) {
	if err := utils.ValidateStruct(patch); err != nil {
		return models.Product{}, fmt.Errorf("validation failed: %w", err)
	}

	product, ok := s.catalog.Update(id, patch)
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return product, nil
}

// DeleteProduct removes the product if present. Cart lines referencing
// it keep their snapshots; that decoupling is intentional.
func (s *CatalogService) DeleteProduct(id string) {
	s.catalog.Delete(id)
}

func (s *CatalogService) Categories() []string {
	return s.catalog.Categories()
}
