// Package http exposes the product catalog over a JSON API served by gin.
package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/market-service/internal/app/product/queries/get_product"
	"github.com/light-bringer/market-service/internal/app/product/queries/latest_products"
	"github.com/light-bringer/market-service/internal/app/product/queries/list_catalog"
	"github.com/light-bringer/market-service/internal/app/product/queries/list_user_products"
	"github.com/light-bringer/market-service/internal/app/product/usecases/create_product"
	"github.com/light-bringer/market-service/internal/app/product/usecases/delete_product"
)

// ProductHandler is a thin coordinator that delegates to use cases and queries.
type ProductHandler struct {
	// Commands
	createProduct *create_product.Interactor
	deleteProduct *delete_product.Interactor

	// Queries
	listCatalog      *list_catalog.Query
	getProduct       *get_product.Query
	listUserProducts *list_user_products.Query
	latestProducts   *latest_products.Query
}

// NewProductHandler creates a new HTTP product handler.
func NewProductHandler(
	createProduct *create_product.Interactor,
	deleteProduct *delete_product.Interactor,
	listCatalog *list_catalog.Query,
	getProduct *get_product.Query,
	listUserProducts *list_user_products.Query,
	latestProducts *latest_products.Query,
) *ProductHandler {
	return &ProductHandler{
		createProduct:    createProduct,
		deleteProduct:    deleteProduct,
		listCatalog:      listCatalog,
		getProduct:       getProduct,
		listUserProducts: listUserProducts,
		latestProducts:   latestProducts,
	}
}

// ListCatalog handles GET /api/v1/products.
func (h *ProductHandler) ListCatalog(c *gin.Context) {
	page, err := h.listCatalog.Execute(c.Request.Context(), &list_catalog.Request{
		Page:      c.Query("page"),
		Search:    c.Query("search"),
		Category:  c.Query("category"),
		Sort:      c.Query("sort"),
		Direction: c.Query("direction"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCatalogResponse(page))
}

// Latest handles GET /api/v1/products/latest.
func (h *ProductHandler) Latest(c *gin.Context) {
	limit, err := latest_products.ParseLimit(c.Query("limit"))
	if err != nil {
		writeError(c, err)
		return
	}

	views, err := h.latestProducts.Execute(c.Request.Context(), &latest_products.Request{Limit: limit})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": toProductResponses(views)})
}

// GetProduct handles GET /api/v1/products/:id.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.getProduct.Execute(c.Request.Context(), &get_product.Request{ProductID: id})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(view))
}

// GetProductDetail handles GET /api/v1/products/:id/detail.
func (h *ProductHandler) GetProductDetail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	detail, err := h.getProduct.Detail(c.Request.Context(), &get_product.Request{ProductID: id})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toDetailResponse(detail))
}

// CreateProduct handles POST /api/v1/products.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
		return
	}

	id, err := h.createProduct.Execute(c.Request.Context(), req.toUseCase())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateProductResponse{ID: id})
}

// DeleteProduct handles DELETE /api/v1/products/:id.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.deleteProduct.Execute(c.Request.Context(), &delete_product.Request{ProductID: id}); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListUserProducts handles GET /api/v1/users/:id/products?scope=.
func (h *ProductHandler) ListUserProducts(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	views, err := h.listUserProducts.Execute(c.Request.Context(), &list_user_products.Request{
		UserID: id,
		Scope:  list_user_products.Scope(c.DefaultQuery("scope", string(list_user_products.ScopeInSale))),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": toProductResponses(views)})
}

// pathID parses the :id parameter, answering 400 when it is not an integer.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id must be an integer"})
		return 0, false
	}
	return id, true
}
