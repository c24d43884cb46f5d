// Package payment wraps the Razorpay payment-link API and verifies its
// inbound webhooks.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// LinkRequest asks for a hosted payment link. AmountPaise is in the smallest
// currency unit, which is also the unit Razorpay expects on the wire.
type LinkRequest struct {
	AmountPaise   int64
	OrderID       string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	CallbackURL   string
}

// Link is the created hosted link.
type Link struct {
	ID       string
	ShortURL string
}

// LinkGateway is the payment-link seam. Configured() false means checkout
// skips the step entirely; it is not an error.
type LinkGateway interface {
	Configured() bool
	CreateLink(ctx context.Context, req LinkRequest) (Link, error)
}

const razorpayEndpoint = "https://api.razorpay.com/v1/payment_links"

// Placeholder credentials from the sample .env count as unconfigured.
const (
	placeholderKeyID  = "rzp_test_YOUR_KEY_ID"
	placeholderSecret = "YOUR_KEY_SECRET"
)

// RazorpayClient creates payment links over the Razorpay REST API.
type RazorpayClient struct {
	keyID     string
	keySecret string
	endpoint  string
	client    *http.Client
}

func NewRazorpayClient(keyID, keySecret string) *RazorpayClient {
	return &RazorpayClient{
		keyID:     keyID,
		keySecret: keySecret,
		endpoint:  razorpayEndpoint,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (r *RazorpayClient) Configured() bool {
	return r.keyID != "" && r.keySecret != "" &&
		r.keyID != placeholderKeyID && r.keySecret != placeholderSecret
}

type linkPayload struct {
	Amount        int64             `json:"amount"`
	Currency      string            `json:"currency"`
	AcceptPartial bool              `json:"accept_partial"`
	Description   string            `json:"description"`
	Customer      linkCustomer      `json:"customer"`
	Notify        map[string]bool   `json:"notify"`
	Reminder      bool              `json:"reminder_enable"`
	CallbackURL   string            `json:"callback_url,omitempty"`
	CallbackMeth  string            `json:"callback_method,omitempty"`
	Notes         map[string]string `json:"notes,omitempty"`
}

type linkCustomer struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}

func (r *RazorpayClient) CreateLink(ctx context.Context, req LinkRequest) (Link, error) {
	if req.AmountPaise <= 0 {
		return Link{}, fmt.Errorf("payment link amount must be positive, got %d", req.AmountPaise)
	}

	name := req.CustomerName
	if name == "" {
		name = "Guest Customer"
	}
	orderRef := req.OrderID
	if orderRef == "" {
		orderRef = "N/A"
	}
	payload := linkPayload{
		Amount:        req.AmountPaise,
		Currency:      "INR",
		AcceptPartial: false,
		Description:   "Uvicorn Order " + orderRef,
		Customer: linkCustomer{
			Name:    name,
			Contact: req.CustomerPhone,
			Email:   req.CustomerEmail,
		},
		Notify: map[string]bool{
			"sms":   req.CustomerPhone != "",
			"email": req.CustomerEmail != "",
		},
		Reminder: true,
		Notes:    map[string]string{"order_id": req.OrderID},
	}
	if req.CallbackURL != "" {
		payload.CallbackURL = req.CallbackURL
		payload.CallbackMeth = "get"
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Link{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return Link{}, err
	}
	httpReq.SetBasicAuth(r.keyID, r.keySecret)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return Link{}, fmt.Errorf("razorpay request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Link{}, fmt.Errorf("razorpay: %d: %s", resp.StatusCode, apiErrorMessage(raw))
	}

	var created struct {
		ID       string `json:"id"`
		ShortURL string `json:"short_url"`
	}
	if err := json.Unmarshal(raw, &created); err != nil {
		return Link{}, fmt.Errorf("decode razorpay response: %w", err)
	}
	return Link{ID: created.ID, ShortURL: created.ShortURL}, nil
}

func apiErrorMessage(raw []byte) string {
	var parsed struct {
		Error struct {
			Description string `json:"description"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Error.Description != "" {
		return parsed.Error.Description
	}
	return strings.TrimSpace(string(raw))
}
