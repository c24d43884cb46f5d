package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var words = []string{
	"Banarasi Silk Kurta",
	"Brass Diya Set",
	"Kanjivaram Saree",
	"Pashmina Shawl",
	"Masala Chai Sampler",
}

func TestStartsWith_EveryPrefixOfEveryWord(t *testing.T) {
	idx := BuildPrefixIndex(words)

	for _, w := range words {
		runes := []rune(w)
		for i := 1; i <= len(runes); i++ {
			prefix := string(runes[:i])
			matches := idx.StartsWith(strings.ToUpper(prefix))

			count := 0
			for _, m := range matches {
				if m == w {
					count++
				}
			}
			require.Equal(t, 1, count, "word %q for prefix %q", w, prefix)
		}
	}
}

func TestStartsWith_SharedPrefix(t *testing.T) {
	idx := BuildPrefixIndex(words)

	matches := idx.StartsWith("b")
	assert.ElementsMatch(t, []string{"Banarasi Silk Kurta", "Brass Diya Set"}, matches)
}

func TestStartsWith_NoMatch(t *testing.T) {
	idx := BuildPrefixIndex(words)
	assert.Empty(t, idx.StartsWith("zz"))
}

func TestStartsWith_BlankPrefixReturnsNothing(t *testing.T) {
	idx := BuildPrefixIndex(words)
	assert.Empty(t, idx.StartsWith(""))
	assert.Empty(t, idx.StartsWith("   "))
}

func TestSearch(t *testing.T) {
	idx := BuildPrefixIndex(words)

	assert.True(t, idx.Search("pashmina shawl"))
	assert.True(t, idx.Search("Pashmina Shawl"))
	assert.False(t, idx.Search("Pashmina"))
	assert.False(t, idx.Search("not in the catalog"))
}
