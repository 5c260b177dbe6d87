package http

import (
	"github.com/gin-gonic/gin"
	"github.com/oakpress/storefront/internal/config"
	"github.com/oakpress/storefront/internal/http/controller"
	"github.com/oakpress/storefront/internal/http/middleware"
	"github.com/oakpress/storefront/internal/service"
)

// InitRouter wires all storefront routes onto the given engine. Admin
// routes are gated by the bearer token middleware.
func InitRouter(
	conf *config.Config,
	server *gin.Engine,
	authService *service.AuthService,
	ctr *controller.Controller,
	authCtr *controller.AuthController,
	productCtr *controller.ProductController,
	preorderCtr *controller.PreorderController,
	uploadCtr *controller.UploadController,
) *gin.Engine {
	server.Use(middleware.Recovery())
	server.Use(middleware.CORS())
	server.Use(middleware.RequestID())
	server.Use(middleware.Logger())

	// Uploaded files are served from disk under both historical prefixes.
	server.Static("/api/uploads", conf.UploadDir)
	server.Static("/uploads", conf.UploadDir)

	api := server.Group("/api")
	{
		api.GET("/test", ctr.Ping)
		api.GET("/epubs/:filename", ctr.ServeEpub)

		api.POST("/admin/login", authCtr.Login)
		api.POST("/preorder", preorderCtr.CreatePreorder)

		api.GET("/products", productCtr.ListProducts)
		api.GET("/products/featured", productCtr.ListFeatured)
	}

	requireAuth := middleware.RequireAuth(authService)

	api.PATCH("/products/:id", requireAuth, productCtr.SetFeatured)

	admin := api.Group("/admin", requireAuth)
	{
		admin.GET("/products", productCtr.ListProducts)
		admin.POST("/products", productCtr.CreateProduct)

		admin.GET("/preorders", preorderCtr.ListAdminPreorders)
		admin.POST("/preorder", preorderCtr.AdminCreatePreorder)
		admin.GET("/stats", preorderCtr.Stats)

		admin.POST("/upload", uploadCtr.Upload)
		admin.GET("/files", uploadCtr.ListFiles)
		admin.DELETE("/files/:filename", uploadCtr.DeleteFile)
	}

	server.POST("/create-checkout-session", ctr.CreateCheckoutSession)

	return server
}
