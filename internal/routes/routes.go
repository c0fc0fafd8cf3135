package routes

import (
	"github.com/gin-gonic/gin"

	"cms_back_end/internal/handlers/product"
	"cms_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, products *product.Handler) {
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.NoRoute(middleware.NotFound())

	// Products
	r.POST("/products", products.UploadProduct)
	r.GET("/products", products.ListProducts)
}
