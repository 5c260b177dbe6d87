package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/oakpress/storefront/internal/repository"
	"github.com/oakpress/storefront/internal/service"
)

// ProductController handles HTTP requests for catalog operations.
type ProductController struct {
	catalogService *service.CatalogService
	uploadService  *service.UploadService
}

// NewProductController creates a new ProductController with the given services.
func NewProductController(catalogService *service.CatalogService, uploadService *service.UploadService) *ProductController {
	return &ProductController{
		catalogService: catalogService,
		uploadService:  uploadService,
	}
}

// ListProducts handles the HTTP GET request for the persisted catalog.
func (pc *ProductController) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, pc.catalogService.List())
}

// ListFeatured handles the HTTP GET request for featured products. It never
// fails; a broken catalog file yields an empty list.
func (pc *ProductController) ListFeatured(c *gin.Context) {
	c.JSON(http.StatusOK, pc.catalogService.ListFeatured())
}

// CreateProduct handles the multipart HTTP POST request for creating a new
// product with an optional image upload.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	name := c.PostForm("name")
	priceField := c.PostForm("price")
	productType := c.PostForm("type")
	if name == "" || priceField == "" || productType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, price, and type are required"})
		return
	}

	price, err := strconv.ParseFloat(priceField, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, price, and type are required"})
		return
	}

	imagePath := ""
	if header, err := c.FormFile("image"); err == nil {
		src, err := header.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		defer src.Close()

		stored, err := pc.uploadService.Store(src, header.Filename, header.Header.Get("Content-Type"), header.Size)
		if err != nil {
			if errors.Is(err, service.ErrInvalidFileType) || errors.Is(err, service.ErrFileTooLarge) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		imagePath = "/uploads/" + stored.Filename
	}

	product, err := pc.catalogService.Create(service.CreateProductInput{
		Name:         name,
		Price:        price,
		Type:         productType,
		Featured:     c.PostForm("featured") == "true",
		DownloadLink: c.PostForm("downloadLink"),
		ImagePath:    imagePath,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingProductFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name, price, and type are required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// SetFeaturedRequest represents the request body for toggling the featured flag.
type SetFeaturedRequest struct {
	Featured *bool `json:"featured" binding:"required"`
}

// SetFeatured handles the HTTP PATCH request for updating a product's
// featured flag.
func (pc *ProductController) SetFeatured(c *gin.Context) {
	var req SetFeaturedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := pc.catalogService.SetFeatured(c.Param("id"), *req.Featured)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}
