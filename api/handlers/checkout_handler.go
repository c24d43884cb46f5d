package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"uvicorn-shop/internal/services"
)

type CheckoutHandler struct {
	checkout *services.CheckoutService
	carts    *services.CartService
}

func NewCheckoutHandler(checkout *services.CheckoutService, carts *services.CartService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, carts: carts}
}

type CheckoutRequestBody struct {
	Email  string `json:"email" binding:"required"`
	CartID string `json:"cart_id" binding:"required"`
}

// Run the checkout pipeline for a stored cart
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req CheckoutRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	cart, err := h.carts.Get(ctx, req.CartID)
	if err != nil {
		if errors.Is(err, services.ErrCartNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result, err := h.checkout.Checkout(ctx, services.CheckoutRequest{
		Email: req.Email,
		Cart:  cart,
	})
	if err != nil {
		// Validation failures only; degraded checkouts still return a result.
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.carts.Clear(ctx, req.CartID); err != nil {
		log.Warn().Err(err).Str("cart_id", req.CartID).Msg("cart clear after checkout failed")
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}
