package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oakpress/storefront/internal/service"
)

// AuthController handles HTTP requests for admin authentication.
type AuthController struct {
	authService *service.AuthService
}

// NewAuthController creates a new AuthController with the given auth service.
func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// LoginRequest represents the request body for admin login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles the HTTP POST request for admin login.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := ac.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrMissingSecret) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error: JWT_SECRET not set"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
