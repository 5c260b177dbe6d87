package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/oakpress/storefront/internal/catalog"
	"github.com/oakpress/storefront/internal/metrics"
	"github.com/oakpress/storefront/internal/model"
	"github.com/oakpress/storefront/internal/repository"
	"github.com/oakpress/storefront/internal/store"
)

// ErrMissingProductFields is returned when a product submission omits a
// required field.
var ErrMissingProductFields = errors.New("name, price, and type are required")

// CatalogService manages the product catalog: a fixed in-memory seed set
// plus the admin-created products persisted to the catalog file. Only the
// persisted products are visible through the public listing endpoints.
type CatalogService struct {
	seed []model.Product
	path string
}

// NewCatalogService creates a catalog service over the given seed set and
// persisted catalog file.
func NewCatalogService(seed []model.Product, path string) *CatalogService {
	return &CatalogService{seed: seed, path: path}
}

// Seed returns the in-memory seed catalog.
func (s *CatalogService) Seed() []model.Product {
	return s.seed
}

// List returns the persisted catalog, or an empty slice when the file is
// absent or corrupt.
func (s *CatalogService) List() []model.Product {
	return store.Read[model.Product](s.path)
}

// ListFeatured filters the persisted catalog to featured products. It never
// fails: any read or parse failure yields an empty result.
func (s *CatalogService) ListFeatured() []model.Product {
	featured := []model.Product{}
	for _, product := range s.List() {
		if product.Featured {
			featured = append(featured, product)
		}
	}
	return featured
}

// CreateProductInput carries an admin product submission. Price is the
// major-currency value entered in the admin form.
type CreateProductInput struct {
	Name         string
	Price        float64
	Type         string
	Featured     bool
	DownloadLink string
	ImagePath    string
}

// Create validates the submission, appends the product to the persisted
// catalog and rewrites the catalog file in full.
func (s *CatalogService) Create(input CreateProductInput) (*model.Product, error) {
	if input.Name == "" || input.Price == 0 || input.Type == "" {
		return nil, ErrMissingProductFields
	}

	image := input.ImagePath
	if image == "" {
		image = catalog.DefaultImage
	}

	product := &model.Product{
		Name:         input.Name,
		Price:        int64(math.Round(input.Price * 100)),
		Type:         input.Type,
		Image:        image,
		Featured:     input.Featured,
		DownloadLink: input.DownloadLink,
	}
	product.InitMeta()

	products := store.Read[model.Product](s.path)
	products = append(products, *product)
	if err := store.Write(s.path, products); err != nil {
		return nil, fmt.Errorf("failed to persist product: %w", err)
	}

	metrics.ProductsCreated.Inc()

	return product, nil
}

// SetFeatured replaces the featured flag of the first product matching id
// and rewrites the catalog file. The file is left untouched when the id is
// unknown.
func (s *CatalogService) SetFeatured(id string, featured bool) (*model.Product, error) {
	products := store.Read[model.Product](s.path)

	for i := range products {
		if products[i].ID == id {
			products[i].Featured = featured
			if err := store.Write(s.path, products); err != nil {
				return nil, fmt.Errorf("failed to persist product update: %w", err)
			}
			return &products[i], nil
		}
	}

	return nil, repository.ErrNotFound
}
