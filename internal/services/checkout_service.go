package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"uvicorn-shop/internal/email"
	"uvicorn-shop/internal/models"
	"uvicorn-shop/internal/money"
	"uvicorn-shop/internal/notify"
	"uvicorn-shop/internal/payment"
)

// OrderRepository is what the orchestrator needs from order persistence.
type OrderRepository interface {
	Save(ctx context.Context, o models.Order) error
}

// CheckoutConfig is the orchestrator's policy surface: sender eligibility
// plus the fixed administrative recipients.
type CheckoutConfig struct {
	Policy     email.SenderPolicy
	AdminEmail string
	OwnerEmail string
	AppURL     string
}

// CheckoutRequest is one checkout invocation: a cart snapshot and the
// buyer's email.
type CheckoutRequest struct {
	Email string
	Cart  *models.Cart
}

// CheckoutResult reports every step's outcome; no step fails silently.
type CheckoutResult struct {
	OrderID     string                     `json:"order_id"`
	Amounts     money.Amounts              `json:"amounts"`
	Buyer       models.NotificationOutcome `json:"buyer"`
	Admin       models.NotificationOutcome `json:"admin"`
	PaymentLink models.PaymentLinkResult   `json:"payment_link"`
}

// CheckoutService drives a checkout: validate, derive the order id, compute
// totals, attempt buyer then admin notification, optionally create a payment
// link, persist the order and publish it to the hub. Two calls with the same
// cart produce two distinct orders; duplicate suppression is the caller's
// job.
type CheckoutService struct {
	cfg     CheckoutConfig
	mailer  email.Mailer
	gateway payment.LinkGateway
	orders  OrderRepository
	hub     *notify.Hub
	ids     orderIDGen
}

func NewCheckoutService(cfg CheckoutConfig, mailer email.Mailer, gateway payment.LinkGateway, orders OrderRepository, hub *notify.Hub) *CheckoutService {
	return &CheckoutService{
		cfg:     cfg,
		mailer:  mailer,
		gateway: gateway,
		orders:  orders,
		hub:     hub,
	}
}

// Checkout runs the pipeline. Validation failures return an error with no
// side effects; everything after validation degrades into the result instead
// of failing the call.
func (s *CheckoutService) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	// Step 1: validate before any side effect.
	if req.Cart == nil || req.Cart.Len() == 0 {
		return nil, ErrEmptyCart
	}
	recipient := email.Normalize(req.Email)
	if recipient == "" {
		return nil, ErrInvalidEmail
	}

	// Steps 2-3: order identity and authoritative totals.
	orderID := s.ids.next()
	amounts := money.Compute(req.Cart.Subtotal())
	items := req.Cart.Lines()

	log.Info().
		Str("order_id", orderID).
		Str("recipient", recipient).
		Int64("total", amounts.Total).
		Msg("checkout started")

	// Step 4: static credential check; a provider rejection below downgrades
	// this for the rest of the checkout.
	keyValid := s.cfg.Policy.KeyLooksValid()

	// Step 5: buyer notification.
	receipt := email.ReceiptHTML(orderID, items, amounts, recipient)
	buyer := s.attemptSend(ctx, &keyValid, sendAttempt{
		recipients: []string{recipient},
		replyTo:    recipient,
		subject:    "Uvicorn Order " + orderID,
		html:       receipt,
		label:      "Recipient send",
	})

	// Step 6: admin notification, honoring a key invalidated in step 5.
	admin := s.attemptSend(ctx, &keyValid, sendAttempt{
		recipients: s.adminRecipients(),
		subject:    "[ADMIN COPY] Uvicorn Order " + orderID,
		html:       email.AdminReceiptHTML(receipt, recipient),
		label:      "Admin copy",
	})

	// Step 7: payment link, skipped without error when unconfigured.
	link := s.createPaymentLink(ctx, orderID, recipient, amounts.Total)

	order := models.Order{
		ID:            orderID,
		Email:         recipient,
		Items:         items,
		Subtotal:      amounts.Subtotal,
		Tax:           amounts.Tax,
		Total:         amounts.Total,
		Status:        models.OrderStatusCompleted,
		PaymentLinkID: link.LinkID,
		CreatedAt:     time.Now().UTC(),
	}
	if s.orders != nil {
		if err := s.orders.Save(ctx, order); err != nil {
			// Order persistence is best-effort; the checkout already happened.
			log.Error().Err(err).Str("order_id", orderID).Msg("order persistence failed")
		}
	}
	if s.hub != nil {
		s.hub.Publish(notify.OrderEvent{
			OrderID:     orderID,
			Email:       recipient,
			TotalPaise:  amounts.Total,
			PaymentLink: link.URL,
		})
	}

	return &CheckoutResult{
		OrderID:     orderID,
		Amounts:     amounts,
		Buyer:       buyer,
		Admin:       admin,
		PaymentLink: link,
	}, nil
}

type sendAttempt struct {
	recipients []string
	replyTo    string
	subject    string
	html       string
	label      string
}

// attemptSend maps one notification attempt to its terminal outcome. It
// downgrades *keyValid when the provider reports the credential invalid, so
// a later attempt will not retry with a known-bad key.
func (s *CheckoutService) attemptSend(ctx context.Context, keyValid *bool, at sendAttempt) models.NotificationOutcome {
	if len(at.recipients) == 0 {
		return models.NotificationOutcome{
			Status: models.OutcomeSimulated,
			Note:   at.label + " simulated: no valid recipient.",
		}
	}

	ok, reason := s.cfg.Policy.CanSend(at.recipients[0], *keyValid)
	if !ok {
		log.Info().Str("label", at.label).Str("reason", reason).Msg("send simulated")
		return models.NotificationOutcome{
			Status:     models.OutcomeSimulated,
			Recipients: at.recipients,
			Note:       at.label + " simulated: " + reason,
		}
	}

	err := s.mailer.Send(ctx, email.Message{
		From:    email.DefaultFrom,
		To:      at.recipients,
		ReplyTo: at.replyTo,
		Subject: at.subject,
		HTML:    at.html,
	})
	if err != nil {
		note := at.label + " failed: " + err.Error() + "."
		if email.IsInvalidKey(err) {
			note += " The RESEND_API_KEY appears invalid. Replace it with a valid key."
			*keyValid = false
		}
		log.Warn().Err(err).Str("label", at.label).Msg("send failed")
		return models.NotificationOutcome{
			Status:     models.OutcomeFailed,
			Recipients: at.recipients,
			Note:       note,
		}
	}

	log.Info().Str("label", at.label).Strs("to", at.recipients).Msg("email sent")
	return models.NotificationOutcome{
		Status:     models.OutcomeDelivered,
		Recipients: at.recipients,
	}
}

// adminRecipients is the deduplicated admin list: primary admin address,
// then the owner/test inbox when distinct.
func (s *CheckoutService) adminRecipients() []string {
	var out []string
	admin := email.Normalize(s.cfg.AdminEmail)
	owner := email.Normalize(s.cfg.OwnerEmail)
	if admin != "" {
		out = append(out, admin)
	}
	if owner != "" && owner != admin {
		out = append(out, owner)
	}
	return out
}

func (s *CheckoutService) createPaymentLink(ctx context.Context, orderID, recipient string, totalPaise int64) models.PaymentLinkResult {
	if s.gateway == nil || !s.gateway.Configured() {
		log.Info().Str("order_id", orderID).Msg("payment gateway not configured, skipping link")
		return models.PaymentLinkResult{
			Configured: false,
			Error:      "Payment gateway not configured. Please add Razorpay credentials.",
		}
	}

	link, err := s.gateway.CreateLink(ctx, payment.LinkRequest{
		AmountPaise:   totalPaise,
		OrderID:       orderID,
		CustomerEmail: recipient,
		CallbackURL:   s.cfg.AppURL + "/payment-success",
	})
	if err != nil {
		// Non-fatal: totals and notifications stand.
		log.Warn().Err(err).Str("order_id", orderID).Msg("payment link creation failed")
		return models.PaymentLinkResult{Configured: true, Error: err.Error()}
	}

	log.Info().Str("order_id", orderID).Str("link", link.ShortURL).Msg("payment link created")
	return models.PaymentLinkResult{Configured: true, URL: link.ShortURL, LinkID: link.ID}
}
