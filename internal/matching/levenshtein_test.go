package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"procura/internal/matching"
)

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, matching.Similarity("", ""))
	assert.Equal(t, 1.0, matching.Similarity("abc", "abc"))
	assert.Equal(t, 0.0, matching.Similarity("", "abc"))

	// One substitution in a five-rune string: (5-1)/5.
	assert.InDelta(t, 0.8, matching.Similarity("gao17", "gao27"), 1e-9)

	// kitten -> sitting is the classic distance-3 pair: (7-3)/7.
	assert.InDelta(t, 4.0/7.0, matching.Similarity("kitten", "sitting"), 1e-9)
}

func TestSimilarity_Symmetric(t *testing.T) {
	a, b := "bot mi da dung", "bot mi"
	assert.Equal(t, matching.Similarity(a, b), matching.Similarity(b, a))
}

func TestSimilarity_CountsRunesNotBytes(t *testing.T) {
	// Multibyte runes must weigh the same as ASCII: one rune differs out of
	// four.
	assert.InDelta(t, 0.75, matching.Similarity("mắm1", "mắm2"), 1e-9)
}

func TestNormalizedSimilarity(t *testing.T) {
	// Diacritic variants of the same name are identical after normalization.
	assert.Equal(t, 1.0, matching.NormalizedSimilarity("Bột mì", "bot mi"))
	assert.Equal(t, 1.0, matching.NormalizedSimilarity("ĐƯỜNG CÁT", "duong cat"))

	// Unrelated names stay far apart.
	assert.Less(t, matching.NormalizedSimilarity("Bột mì", "Nước mắm"), 0.6)
}
