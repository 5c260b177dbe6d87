package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oakpress/storefront/internal/service"
)

// PreorderController handles HTTP requests for preorder operations.
type PreorderController struct {
	preorderService *service.PreorderService
}

// NewPreorderController creates a new PreorderController with the given
// preorder service.
func NewPreorderController(preorderService *service.PreorderService) *PreorderController {
	return &PreorderController{
		preorderService: preorderService,
	}
}

// CreatePreorderRequest represents the request body for a preorder
// submission.
type CreatePreorderRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required"`
	Message     *string `json:"message"`
	ProductID   *string `json:"productId"`
	ProductName *string `json:"productName"`
}

// CreatePreorder handles the HTTP POST request for capturing a preorder.
func (pc *PreorderController) CreatePreorder(c *gin.Context) {
	var req CreatePreorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and email are required"})
		return
	}

	id, err := pc.preorderService.Create(c.Request.Context(), service.CreatePreorderInput{
		Name:        req.Name,
		Email:       req.Email,
		Message:     req.Message,
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingPreorderFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name and email are required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preorder"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

// AdminCreatePreorder handles the authenticated HTTP POST request for
// recording a preorder on behalf of a customer.
func (pc *PreorderController) AdminCreatePreorder(c *gin.Context) {
	var req CreatePreorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	_, err := pc.preorderService.Create(c.Request.Context(), service.CreatePreorderInput{
		Name:        req.Name,
		Email:       req.Email,
		Message:     req.Message,
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database insert failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListAdminPreorders handles the HTTP GET request for the admin preorder
// listing.
func (pc *PreorderController) ListAdminPreorders(c *gin.Context) {
	view, err := pc.preorderService.AdminView(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load preorders"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// Stats handles the HTTP GET request for the admin dashboard summary.
func (pc *PreorderController) Stats(c *gin.Context) {
	stats, err := pc.preorderService.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
