package controller

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/oakpress/storefront/internal/config"
)

// Controller handles general HTTP requests.
type Controller struct {
	config *config.Config
}

// New creates a new Controller with the given configuration.
func New(config *config.Config) *Controller {
	return &Controller{
		config: config,
	}
}

// Ping handles the HTTP GET request for the health check endpoint.
func (con *Controller) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Backend is working!",
	})
}

// ServeEpub streams an epub file with a fixed content type.
func (con *Controller) ServeEpub(c *gin.Context) {
	filename := filepath.Base(c.Param("filename"))
	path := filepath.Join(con.config.EpubDir, filename)

	c.Header("Content-Type", "application/epub+zip")
	c.File(path)
}

// CreateCheckoutSession is a payment stub kept for frontend compatibility.
func (con *Controller) CreateCheckoutSession(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"id": "mock_session_id"})
}
