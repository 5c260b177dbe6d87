// Package catalog builds the fixed in-memory seed catalog. The seed is
// constructed once at process start and passed by reference into the
// services that need it; it is never persisted and never mutated afterwards.
package catalog

import (
	"fmt"
	"math/rand"

	"github.com/oakpress/storefront/internal/model"
)

const (
	// PlaceholderImage is the image path assigned to every seed product.
	PlaceholderImage = "/images/placeholder.jpg"

	// DefaultImage is the image path assigned to admin-created products
	// submitted without an upload.
	DefaultImage = "/images/default.jpg"
)

const (
	seedAlbums  = 13
	seedNovels  = 8
	seedArt     = 200
	seedTShirts = 100
)

// NewSeed returns the seed catalog: 13 albums, 8 novels, 200 art PDFs and
// 100 t-shirts. Album preorder counts are randomized once here and stay
// fixed for the lifetime of the process.
func NewSeed() []model.Product {
	products := make([]model.Product, 0, seedAlbums+seedNovels+seedArt+seedTShirts)

	for i := 0; i < seedAlbums; i++ {
		goal := 100
		products = append(products, model.Product{
			ID:           fmt.Sprintf("album-%d", i+1),
			Name:         fmt.Sprintf("Album %d", i+1),
			Price:        1000,
			Image:        PlaceholderImage,
			Type:         model.TypeAlbum,
			PreorderGoal: &goal,
			Preorders:    rand.Intn(100),
			Featured:     i < 3,
		})
	}

	for i := 0; i < seedNovels; i++ {
		products = append(products, model.Product{
			ID:       fmt.Sprintf("novel-%d", i+1),
			Name:     fmt.Sprintf("Novel %d", i+1),
			Price:    1500,
			Image:    PlaceholderImage,
			Type:     model.TypeNovel,
			Featured: i == 0,
		})
	}

	for i := 0; i < seedArt; i++ {
		products = append(products, model.Product{
			ID:       fmt.Sprintf("art-%d", i+1),
			Name:     fmt.Sprintf("Art PDF %d", i+1),
			Price:    500,
			Image:    PlaceholderImage,
			Type:     model.TypeArt,
			Featured: i == 41,
		})
	}

	for i := 0; i < seedTShirts; i++ {
		products = append(products, model.Product{
			ID:       fmt.Sprintf("tshirt-%d", i+1),
			Name:     fmt.Sprintf("T-shirt %d", i+1),
			Price:    2500,
			Image:    PlaceholderImage,
			Type:     model.TypeTShirt,
			Featured: i < 2,
		})
	}

	return products
}
