package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Message is one outbound email. ReplyTo is set on buyer receipts only.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Mailer is the transport seam; tests substitute a recording fake.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// ErrInvalidAPIKey marks transport failures caused by a bad or revoked
// credential. Once seen, later attempts in the same checkout must treat the
// credential as invalid.
var ErrInvalidAPIKey = errors.New("email: api key is invalid")

// IsInvalidKey reports whether err indicates a rejected credential.
func IsInvalidKey(err error) bool {
	return errors.Is(err, ErrInvalidAPIKey)
}

const resendEndpoint = "https://api.resend.com/emails"

// ResendMailer posts messages to the Resend HTTP API.
type ResendMailer struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewResendMailer(apiKey string) *ResendMailer {
	return &ResendMailer{
		apiKey:   apiKey,
		endpoint: resendEndpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (m *ResendMailer) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("resend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	providerMsg := providerMessage(raw)
	if providerMsg == "" {
		providerMsg = http.StatusText(resp.StatusCode)
	}

	sendErr := fmt.Errorf("resend: %d: %s", resp.StatusCode, providerMsg)
	if resp.StatusCode == http.StatusUnauthorized ||
		strings.Contains(strings.ToLower(providerMsg), "api key is invalid") {
		return fmt.Errorf("%w: %s", ErrInvalidAPIKey, sendErr)
	}
	return sendErr
}

// providerMessage digs the human-readable message out of a Resend error body.
func providerMessage(raw []byte) string {
	var parsed struct {
		Message string `json:"message"`
		Name    string `json:"name"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return strings.TrimSpace(string(raw))
	}
	if parsed.Message != "" {
		return parsed.Message
	}
	return parsed.Name
}
