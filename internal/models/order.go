package models

import "time"

type OrderStatus string

const (
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
)

// Order is the checkout-time snapshot. Amounts are in paise.
type Order struct {
	ID            string      `json:"id"`
	Email         string      `json:"email"`
	Items         []CartItem  `json:"items"`
	Subtotal      int64       `json:"subtotal"`
	Tax           int64       `json:"tax"`
	Total         int64       `json:"total"`
	Status        OrderStatus `json:"status"`
	PaymentLinkID string      `json:"payment_link_id,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

// OutcomeStatus is the terminal state of one notification attempt. Every
// checkout produces exactly one outcome per recipient class.
type OutcomeStatus string

const (
	OutcomeDelivered OutcomeStatus = "delivered"
	OutcomeSimulated OutcomeStatus = "simulated"
	OutcomeFailed    OutcomeStatus = "failed"
)

// NotificationOutcome reports what happened to one recipient class (buyer or
// admin). Note carries the human-readable reason for simulated/failed states.
type NotificationOutcome struct {
	Status     OutcomeStatus `json:"status"`
	Recipients []string      `json:"recipients,omitempty"`
	Note       string        `json:"note,omitempty"`
}

// PaymentLinkResult distinguishes "not configured" from "attempted and
// rejected"; those call for different operator actions.
type PaymentLinkResult struct {
	Configured bool   `json:"configured"`
	URL        string `json:"url,omitempty"`
	LinkID     string `json:"link_id,omitempty"`
	Error      string `json:"error,omitempty"`
}
