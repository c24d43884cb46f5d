package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
)

// Webhook event types Razorpay sends for payment links.
const (
	EventLinkPaid      = "payment_link.paid"
	EventLinkCancelled = "payment_link.cancelled"
	EventLinkExpired   = "payment_link.expired"
)

// ErrBadSignature rejects a webhook whose signature does not match. The body
// is never parsed in that case.
var ErrBadSignature = errors.New("payment: invalid webhook signature")

// Event is the verified webhook payload. Amount is in paise.
type Event struct {
	Name          string
	PaymentLinkID string
	PaymentID     string
	Amount        int64
}

// EventHandlers receives dispatched events; nil handlers skip their event.
// Unrecognized event types are acknowledged and ignored so new provider
// events do not break the endpoint.
type EventHandlers struct {
	LinkPaid      func(Event)
	LinkCancelled func(Event)
	LinkExpired   func(Event)
}

// VerifySignature checks the HMAC-SHA256 hex signature over the exact raw
// body. hmac.Equal gives a constant-time comparison.
func VerifySignature(body []byte, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

type rawEvent struct {
	Event   string `json:"event"`
	Payload struct {
		PaymentLink struct {
			Entity struct {
				ID string `json:"id"`
			} `json:"entity"`
		} `json:"payment_link"`
		Payment struct {
			Entity struct {
				ID     string `json:"id"`
				Amount int64  `json:"amount"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// HandleWebhook verifies then dispatches one webhook delivery. Verification
// failure returns ErrBadSignature before any parsing happens.
func HandleWebhook(body []byte, signature, secret string, h EventHandlers) error {
	if !VerifySignature(body, signature, secret) {
		return ErrBadSignature
	}

	var raw rawEvent
	if err := json.Unmarshal(body, &raw); err != nil {
		return fmt.Errorf("decode webhook payload: %w", err)
	}

	ev := Event{
		Name:          raw.Event,
		PaymentLinkID: raw.Payload.PaymentLink.Entity.ID,
		PaymentID:     raw.Payload.Payment.Entity.ID,
		Amount:        raw.Payload.Payment.Entity.Amount,
	}

	switch ev.Name {
	case EventLinkPaid:
		if h.LinkPaid != nil {
			h.LinkPaid(ev)
		}
	case EventLinkCancelled:
		if h.LinkCancelled != nil {
			h.LinkCancelled(ev)
		}
	case EventLinkExpired:
		if h.LinkExpired != nil {
			h.LinkExpired(ev)
		}
	default:
		// forward compatibility: acknowledge unknown events
	}
	return nil
}
