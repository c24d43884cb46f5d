package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute_GSTScenario(t *testing.T) {
	// 2 x 100000 paise at 18% GST
	amounts := Compute(200000)

	assert.Equal(t, int64(200000), amounts.Subtotal)
	assert.Equal(t, int64(36000), amounts.Tax)
	assert.Equal(t, int64(236000), amounts.Total)
}

func TestTax_RoundsHalfUp(t *testing.T) {
	// 3 paise * 0.18 = 0.54 -> 1; 2 * 0.18 = 0.36 -> 0; 25 * 0.18 = 4.5 -> 5
	assert.Equal(t, int64(1), Tax(3))
	assert.Equal(t, int64(0), Tax(2))
	assert.Equal(t, int64(5), Tax(25))
}

func TestCompute_TotalIsDerivedByAddition(t *testing.T) {
	for _, subtotal := range []int64{0, 1, 99, 12345, 999999} {
		amounts := Compute(subtotal)
		assert.Equal(t, amounts.Subtotal+amounts.Tax, amounts.Total)
	}
}

func TestRupeesToPaise(t *testing.T) {
	assert.Equal(t, int64(10000), RupeesToPaise(100))
	assert.Equal(t, int64(12346), RupeesToPaise(123.455))
}

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "₹2,360.00", FormatINR(236000))
	assert.Equal(t, "₹0.05", FormatINR(5))
	assert.Equal(t, "₹999.99", FormatINR(99999))
	assert.Equal(t, "₹12,34,567.89", FormatINR(123456789))
	assert.Equal(t, "-₹1.00", FormatINR(-100))
}
