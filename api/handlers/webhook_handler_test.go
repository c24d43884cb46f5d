package handlers

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWebhookSecret = "whsec_test"

type markPaidCall struct {
	linkID    string
	paymentID string
}

type mockOrderMarker struct {
	calls []markPaidCall
	err   error
}

func (m *mockOrderMarker) MarkPaid(_ context.Context, linkID, paymentID string) error {
	m.calls = append(m.calls, markPaidCall{linkID: linkID, paymentID: paymentID})
	return m.err
}

func webhookRouter(secret string, orders OrderMarker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/razorpay-webhook", NewWebhookHandler(secret, orders).HandleRazorpayWebhook)
	return router
}

func signBody(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func postWebhook(router *gin.Engine, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/razorpay-webhook", bytes.NewReader(body))
	req.Header.Set("X-Razorpay-Signature", signature)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var paidBody = []byte(`{"event":"payment_link.paid","payload":{"payment_link":{"entity":{"id":"plink_7"}},"payment":{"entity":{"id":"pay_7","amount":236000}}}}`)

func TestWebhook_ValidSignatureMarksOrderPaid(t *testing.T) {
	orders := &mockOrderMarker{}
	router := webhookRouter(testWebhookSecret, orders)

	w := postWebhook(router, paidBody, signBody(paidBody))

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, orders.calls, 1)
	assert.Equal(t, "plink_7", orders.calls[0].linkID)
	assert.Equal(t, "pay_7", orders.calls[0].paymentID)
}

func TestWebhook_AlteredBodyRejected(t *testing.T) {
	orders := &mockOrderMarker{}
	router := webhookRouter(testWebhookSecret, orders)

	signature := signBody(paidBody)
	tampered := bytes.Replace(paidBody, []byte("236000"), []byte("1"), 1)

	w := postWebhook(router, tampered, signature)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, orders.calls)
}

func TestWebhook_MissingSecretIsServerError(t *testing.T) {
	router := webhookRouter("", &mockOrderMarker{})

	w := postWebhook(router, paidBody, signBody(paidBody))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWebhook_UnknownEventAcknowledged(t *testing.T) {
	orders := &mockOrderMarker{}
	router := webhookRouter(testWebhookSecret, orders)

	body := []byte(`{"event":"payment.captured","payload":{}}`)
	w := postWebhook(router, body, signBody(body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, orders.calls)
}
