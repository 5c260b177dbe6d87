package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oakpress/storefront/internal/repository"
	"github.com/oakpress/storefront/internal/service"
)

// UploadController handles HTTP requests for file uploads.
type UploadController struct {
	uploadService *service.UploadService
}

// NewUploadController creates a new UploadController with the given upload
// service.
func NewUploadController(uploadService *service.UploadService) *UploadController {
	return &UploadController{
		uploadService: uploadService,
	}
}

// Upload handles the multipart HTTP POST request for storing a file.
func (uc *UploadController) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	src, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer src.Close()

	stored, err := uc.uploadService.Store(src, header.Filename, header.Header.Get("Content-Type"), header.Size)
	if err != nil {
		if errors.Is(err, service.ErrInvalidFileType) || errors.Is(err, service.ErrFileTooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store upload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"url":          stored.URL,
		"filename":     stored.Filename,
		"originalName": header.Filename,
		"size":         stored.Size,
	})
}

// ListFiles handles the HTTP GET request for enumerating uploaded files.
func (uc *UploadController) ListFiles(c *gin.Context) {
	files, err := uc.uploadService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list files"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"files": files})
}

// DeleteFile handles the HTTP DELETE request for removing an uploaded file.
func (uc *UploadController) DeleteFile(c *gin.Context) {
	if err := uc.uploadService.Delete(c.Param("filename")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "File deleted"})
}
