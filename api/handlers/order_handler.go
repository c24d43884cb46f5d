package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"uvicorn-shop/internal/models"
	"uvicorn-shop/internal/store"
)

// OrderGetter is the read side of order persistence.
type OrderGetter interface {
	Get(ctx context.Context, id string) (models.Order, error)
}

type OrderHandler struct {
	orders OrderGetter
}

func NewOrderHandler(orders OrderGetter) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Get a stored order by id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": order})
}
