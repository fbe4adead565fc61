package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcess(t *testing.T) {
	assert.Equal(t, "phế cầu người lớn", Process("Phế_cầu  người_lớn"))
	assert.Equal(t, "ivacflu s", Process("Ivacflu-S"))
	assert.Equal(t, "", Process("--"))
}

func TestRatios(t *testing.T) {
	assert.Equal(t, 100, Ratio("bcg", "bcg"))
	assert.Equal(t, 90, Ratio("synflorix", "synflorixx"))
	assert.Equal(t, 0, Ratio("", "bcg"))
	assert.Equal(t, 100, TokenSortRatio("tetra vaxigrip", "vaxigrip tetra"))
	assert.Equal(t, 100, PartialRatio("cúm", "vaccine cúm"))
	assert.Equal(t, 0, PartialRatio("", "vaccine"))
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		min  int
		max  int
	}{
		{"identical", "Synflorix", "synflorix", 100, 100},
		{"one typo", "synflorixx", "Synflorix", 90, 90},
		{"reordered tokens", "tetra vaxigrip", "Vaxigrip Tetra", 95, 95},
		{"group suffix", "cúm", "vaccine cúm", 90, 90},
		{"unrelated", "zzzz qqqq", "Synflorix", 0, 40},
		{"empty", "", "Synflorix", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			assert.GreaterOrEqual(t, got, tt.min)
			assert.LessOrEqual(t, got, tt.max)
		})
	}
}

func TestExtractOne(t *testing.T) {
	choices := []string{"Synflorix", "Prevenar 13", "vaccine cúm"}

	match, score, ok := ExtractOne("synflorixx", choices, DefaultCutoff)
	assert.True(t, ok)
	assert.Equal(t, "Synflorix", match)
	assert.Equal(t, 90, score)

	match, _, ok = ExtractOne("zzzz qqqq", choices, DefaultCutoff)
	assert.False(t, ok)
	assert.Empty(t, match)

	_, _, ok = ExtractOne("bcg", nil, DefaultCutoff)
	assert.False(t, ok)

	// first maximum wins
	match, _, ok = ExtractOne("abc", []string{"abc", "ABC"}, DefaultCutoff)
	assert.True(t, ok)
	assert.Equal(t, "abc", match)
}
