package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter registers the product API and the health probe.
func NewRouter(handler *ProductHandler, logger logrus.FieldLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), Logger(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	api := r.Group("/api/v1")
	{
		products := api.Group("/products")
		products.GET("", handler.ListCatalog)
		products.GET("/latest", handler.Latest)
		products.GET("/:id", handler.GetProduct)
		products.GET("/:id/detail", handler.GetProductDetail)
		products.POST("", handler.CreateProduct)
		products.DELETE("/:id", handler.DeleteProduct)

		api.GET("/users/:id/products", handler.ListUserProducts)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	})

	return r
}
