package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"uvicorn-shop/internal/models"
	"uvicorn-shop/internal/money"
	"uvicorn-shop/internal/services"
)

type CartHandler struct {
	carts   *services.CartService
	catalog *services.CatalogService
}

func NewCartHandler(carts *services.CartService, catalog *services.CatalogService) *CartHandler {
	return &CartHandler{carts: carts, catalog: catalog}
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type UpdateCartItemRequest struct {
	// Pointer so an explicit zero binds; zero deletes the line.
	Quantity *int `json:"quantity" binding:"required"`
}

// Create a new empty cart
func (h *CartHandler) CreateCart(c *gin.Context) {
	id, err := h.carts.Create(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{"cart_id": id}})
}

// Get cart with computed amounts
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.carts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.renderCart(c, c.Param("id"), cart)
}

// Add item to cart
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, exists := h.catalog.Get(req.ProductID)
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	cart, err := h.carts.AddItem(c.Request.Context(), c.Param("id"), product, req.Quantity)
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.renderCart(c, c.Param("id"), cart)
}

// Set quantity for a cart line; zero or below removes it
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := h.carts.SetQuantity(c.Request.Context(), c.Param("id"), c.Param("product_id"), *req.Quantity)
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.renderCart(c, c.Param("id"), cart)
}

// Remove a cart line (idempotent)
func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	cart, err := h.carts.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("product_id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.renderCart(c, c.Param("id"), cart)
}

// Clear all lines
func (h *CartHandler) ClearCart(c *gin.Context) {
	cart, err := h.carts.Clear(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.renderCart(c, c.Param("id"), cart)
}

func (h *CartHandler) renderCart(c *gin.Context, id string, cart *models.Cart) {
	amounts := money.Compute(cart.Subtotal())
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"cart_id": id,
			"items":   cart.Lines(),
			"amounts": amounts,
		},
	})
}

func (h *CartHandler) renderError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrCartNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
