package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"uvicorn-shop/internal/payment"
	"uvicorn-shop/internal/store"
)

// OrderMarker is the slice of order persistence the webhook needs.
type OrderMarker interface {
	MarkPaid(ctx context.Context, paymentLinkID, paymentID string) error
}

type WebhookHandler struct {
	secret string
	orders OrderMarker
}

func NewWebhookHandler(secret string, orders OrderMarker) *WebhookHandler {
	return &WebhookHandler{secret: secret, orders: orders}
}

// Verify and process a Razorpay webhook. The signature covers the exact raw
// body; nothing is parsed before verification succeeds.
func (h *WebhookHandler) HandleRazorpayWebhook(c *gin.Context) {
	if h.secret == "" {
		log.Warn().Msg("RAZORPAY_WEBHOOK_SECRET not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook not configured"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable body"})
		return
	}
	signature := c.GetHeader("X-Razorpay-Signature")

	ctx := c.Request.Context()
	err = payment.HandleWebhook(body, signature, h.secret, payment.EventHandlers{
		LinkPaid: func(ev payment.Event) {
			log.Info().
				Str("payment_link_id", ev.PaymentLinkID).
				Str("payment_id", ev.PaymentID).
				Int64("amount", ev.Amount).
				Msg("payment link paid")
			if h.orders == nil {
				return
			}
			if err := h.orders.MarkPaid(ctx, ev.PaymentLinkID, ev.PaymentID); err != nil {
				if errors.Is(err, store.ErrOrderNotFound) {
					log.Warn().Str("payment_link_id", ev.PaymentLinkID).Msg("paid event for unknown order")
					return
				}
				log.Error().Err(err).Msg("marking order paid failed")
			}
		},
		LinkCancelled: func(ev payment.Event) {
			log.Info().Str("payment_link_id", ev.PaymentLinkID).Msg("payment link cancelled")
		},
		LinkExpired: func(ev payment.Event) {
			log.Info().Str("payment_link_id", ev.PaymentLinkID).Msg("payment link expired")
		},
	})
	if err != nil {
		if errors.Is(err, payment.ErrBadSignature) {
			log.Warn().Msg("invalid webhook signature")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Webhook processing failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
