// Package email carries the notification channel: address handling, the
// sender eligibility policy, the Resend transport, and receipt rendering.
package email

import (
	"regexp"
	"strings"
)

var (
	simpleAddr = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	namedAddr  = regexp.MustCompile(`^[^<>]+<\s*[^\s@]+@[^\s@]+\.[^\s@]+\s*>$`)
	bareAddr   = regexp.MustCompile(`<?([^\s@<>]+@[^\s@<>]+\.[^\s@<>]+)>?$`)
	angleAddr  = regexp.MustCompile(`<\s*([^>]+)\s*>`)
)

// ValidSender reports whether s is usable as a "from": either a bare
// local@domain.tld or a "Display Name <local@domain.tld>" form.
func ValidSender(s string) bool {
	if s == "" {
		return false
	}
	return simpleAddr.MatchString(s) || namedAddr.MatchString(s)
}

// Normalize extracts the bare address from "Name <a@b.tld>" or "a@b.tld"
// input. Returns "" when no address shape is present.
func Normalize(s string) string {
	trimmed := strings.TrimSpace(s)
	m := bareAddr.FindStringSubmatch(trimmed)
	if m == nil {
		return ""
	}
	return m[1]
}

// senderAddress pulls the address part out of a possibly-named sender.
func senderAddress(from string) string {
	if m := angleAddr.FindStringSubmatch(from); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(from)
}

// Domain returns the lowercased domain of an address, or "".
func Domain(addr string) string {
	at := strings.LastIndex(addr, "@")
	if at < 0 || at == len(addr)-1 {
		return ""
	}
	return strings.ToLower(addr[at+1:])
}
