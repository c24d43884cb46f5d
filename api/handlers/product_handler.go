package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"uvicorn-shop/internal/services"
)

type ProductHandler struct {
	catalog *services.CatalogService
}

func NewProductHandler(catalog *services.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// Get all products, optionally ordered by price
func (h *ProductHandler) GetAllProducts(c *gin.Context) {
	products := h.catalog.All()

	switch c.Query("sort") {
	case "price_asc":
		products = h.catalog.SortedByPrice(true)
	case "price_desc":
		products = h.catalog.SortedByPrice(false)
	}

	c.JSON(http.StatusOK, gin.H{
		"data": products,
		"meta": gin.H{"total": len(products)},
	})
}

// Get product by ID
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	product, exists := h.catalog.Get(c.Param("id"))
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": product})
}

// Prefix search over product names
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	products := h.catalog.SearchPrefix(query)

	c.JSON(http.StatusOK, gin.H{
		"data": products,
		"meta": gin.H{
			"total": len(products),
			"query": query,
		},
	})
}

// Health check endpoint
func (h *ProductHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	})
}
