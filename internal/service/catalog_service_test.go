package service_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oakpress/storefront/internal/catalog"
	"github.com/oakpress/storefront/internal/model"
	"github.com/oakpress/storefront/internal/repository"
	"github.com/oakpress/storefront/internal/service"
	"github.com/oakpress/storefront/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T) (*service.CatalogService, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	return service.NewCatalogService(catalog.NewSeed(), path), path
}

func TestCatalogService_CreateProduct(t *testing.T) {
	svc, path := newCatalogService(t)

	product, err := svc.Create(service.CreateProductInput{
		Name:  "Winter Album",
		Price: 19.99,
		Type:  model.TypeAlbum,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1999), product.Price, "major units convert to minor units")
	assert.Contains(t, product.ID, "album-", "id is derived from the product type")
	assert.Equal(t, catalog.DefaultImage, product.Image, "no upload falls back to the default image")
	assert.False(t, product.Featured)
	assert.Nil(t, product.PreorderGoal)
	assert.Zero(t, product.Preorders)

	persisted := store.Read[model.Product](path)
	require.Len(t, persisted, 1)
	assert.Equal(t, *product, persisted[0])
}

func TestCatalogService_CreateValidation(t *testing.T) {
	svc, path := newCatalogService(t)

	tests := []struct {
		name  string
		input service.CreateProductInput
	}{
		{"missing name", service.CreateProductInput{Price: 10, Type: model.TypeNovel}},
		{"missing price", service.CreateProductInput{Name: "Novel", Type: model.TypeNovel}},
		{"missing type", service.CreateProductInput{Name: "Novel", Price: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(tt.input)
			assert.ErrorIs(t, err, service.ErrMissingProductFields)
		})
	}

	assert.Empty(t, store.Read[model.Product](path), "failed submissions must not touch the catalog file")
}

func TestCatalogService_CreateWithUploadedImage(t *testing.T) {
	svc, _ := newCatalogService(t)

	product, err := svc.Create(service.CreateProductInput{
		Name:      "Art Print",
		Price:     5,
		Type:      model.TypeArt,
		ImagePath: "/uploads/123-000000042.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/123-000000042.png", product.Image)
}

func TestCatalogService_SetFeatured(t *testing.T) {
	svc, path := newCatalogService(t)

	created, err := svc.Create(service.CreateProductInput{Name: "Novel", Price: 15, Type: model.TypeNovel})
	require.NoError(t, err)

	updated, err := svc.SetFeatured(created.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Featured)

	persisted := store.Read[model.Product](path)
	require.Len(t, persisted, 1)
	assert.True(t, persisted[0].Featured, "the flag change must be written back")
}

func TestCatalogService_SetFeaturedNotFound(t *testing.T) {
	svc, path := newCatalogService(t)

	_, err := svc.Create(service.CreateProductInput{Name: "Novel", Price: 15, Type: model.TypeNovel})
	require.NoError(t, err)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = svc.SetFeatured("album-999", true)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "a NotFound update must leave the file untouched")
}

func TestCatalogService_ListFeaturedSubset(t *testing.T) {
	svc, _ := newCatalogService(t)

	_, err := svc.Create(service.CreateProductInput{Name: "Plain", Price: 10, Type: model.TypeNovel})
	require.NoError(t, err)
	_, err = svc.Create(service.CreateProductInput{Name: "Starred", Price: 10, Type: model.TypeNovel, Featured: true})
	require.NoError(t, err)

	all := svc.List()
	featured := svc.ListFeatured()

	require.Len(t, featured, 1)
	assert.Equal(t, "Starred", featured[0].Name)

	ids := map[string]bool{}
	for _, p := range all {
		ids[p.ID] = true
	}
	for _, p := range featured {
		assert.True(t, ids[p.ID], "featured must be a subset of the persisted catalog")
	}
}

func TestCatalogService_ListFeaturedCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"oops`), 0o644))
	svc := service.NewCatalogService(catalog.NewSeed(), path)

	assert.NotPanics(t, func() {
		featured := svc.ListFeatured()
		assert.Empty(t, featured, "a corrupt catalog yields an empty featured list")
	})
}

func TestCatalogService_SeedIsStable(t *testing.T) {
	svc, _ := newCatalogService(t)

	first := svc.Seed()
	second := svc.Seed()
	assert.Equal(t, first, second, "seed preorder counts are assigned once and never change")
}
