package email

import "strings"

// DefaultFrom is the sandbox sender used when FROM_SENDER is absent or
// malformed. The resend.dev sandbox domain may mail arbitrary recipients.
const DefaultFrom = "Uvicorn Orders <onboarding@resend.dev>"

const sandboxDomain = "resend.dev"

// SenderPolicy decides, from explicit configuration only, whether a send to
// a given recipient may be attempted. The three-way outcome downstream
// (delivered/simulated/failed) hangs off this predicate.
type SenderPolicy struct {
	From               string
	APIKey             string
	TestSenderDomain   string
	AllowAllRecipients bool
	TestRecipient      string
}

// NewSenderPolicy builds the policy from raw configuration, falling back to
// the sandbox sender when the configured one does not parse.
func NewSenderPolicy(fromSender, apiKey string, allowAll bool, testRecipient string) SenderPolicy {
	from := DefaultFrom
	if ValidSender(fromSender) {
		from = fromSender
	}
	return SenderPolicy{
		From:               from,
		APIKey:             apiKey,
		TestSenderDomain:   sandboxDomain,
		AllowAllRecipients: allowAll,
		TestRecipient:      strings.ToLower(Normalize(testRecipient)),
	}
}

// KeyLooksValid is the static credential check; live keys start with "re_".
func (p SenderPolicy) KeyLooksValid() bool {
	return strings.HasPrefix(strings.TrimSpace(p.APIKey), "re_")
}

// SandboxSender reports whether the configured sender domain is the
// always-allowed test domain.
func (p SenderPolicy) SandboxSender() bool {
	return Domain(senderAddress(p.From)) == p.TestSenderDomain
}

// CanSend decides eligibility for one recipient. keyValid starts as
// KeyLooksValid() but the caller may downgrade it after the provider
// reports the key invalid mid-checkout. The returned reason explains a
// false result; "credential" problems and "sender not verified" problems
// call for different operator fixes.
func (p SenderPolicy) CanSend(recipient string, keyValid bool) (bool, string) {
	if !keyValid {
		return false, "RESEND_API_KEY missing or invalid. Make sure it starts with 're_' and is active."
	}
	if p.SandboxSender() || p.AllowAllRecipients {
		return true, ""
	}
	if strings.ToLower(Normalize(recipient)) == p.TestRecipient && p.TestRecipient != "" {
		return true, ""
	}
	return false, "preview/unverified sender. Verify a domain and set FROM_SENDER + ALLOW_ALL_EMAILS=true to send to any recipient."
}
