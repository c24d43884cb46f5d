// Package money does all monetary arithmetic in paise (INR minor units).
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// GSTRate is the fixed tax rate applied at checkout (18%).
var GSTRate = decimal.New(18, -2)

// Amounts are the authoritative checkout figures, in paise.
type Amounts struct {
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// Tax is round-half-up of subtotal x GSTRate. Only the tax figure is
// rounded; the total is derived by addition so there is no double rounding.
func Tax(subtotal int64) int64 {
	return decimal.NewFromInt(subtotal).Mul(GSTRate).Round(0).IntPart()
}

// Compute derives the full amount set from a subtotal.
func Compute(subtotal int64) Amounts {
	tax := Tax(subtotal)
	return Amounts{Subtotal: subtotal, Tax: tax, Total: subtotal + tax}
}

// RupeesToPaise converts a major-unit amount to paise, rounding half-up.
// Internal amounts are already paise; this exists for callers holding rupees.
func RupeesToPaise(rupees float64) int64 {
	return decimal.NewFromFloat(rupees).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// FormatINR renders paise as a rupee string for receipts, e.g. 236000 ->
// "₹2,360.00". Grouping follows the Indian convention (last three digits,
// then pairs).
func FormatINR(paise int64) string {
	neg := paise < 0
	if neg {
		paise = -paise
	}
	rupees := paise / 100
	frac := paise % 100
	s := groupIndian(rupees)
	if neg {
		return fmt.Sprintf("-₹%s.%02d", s, frac)
	}
	return fmt.Sprintf("₹%s.%02d", s, frac)
}

func groupIndian(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	head := s[:len(s)-3]
	tail := s[len(s)-3:]
	var grouped []byte
	for len(head) > 2 {
		grouped = append([]byte(","+head[len(head)-2:]), grouped...)
		head = head[:len(head)-2]
	}
	return head + string(grouped) + "," + tail
}
