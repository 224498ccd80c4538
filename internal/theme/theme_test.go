package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankColor(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		c, err := RankColor(i)
		require.NoError(t, err)
		assert.Equal(t, RankColors[i], c)
		assert.NotEmpty(t, c)
		seen[c] = true
	}
	assert.Len(t, seen, 3, "rank colors must be distinct")
	assert.Contains(t, RankColors[0], "yellow")
}

func TestRankColorOutOfRange(t *testing.T) {
	for _, rank := range []int{-1, 3, 10} {
		c, err := RankColor(rank)
		assert.ErrorIs(t, err, ErrRankOutOfRange)
		assert.Empty(t, c)
	}
}

func TestParseSummaryCard(t *testing.T) {
	tests := []struct {
		key  string
		want SummaryCard
	}{
		{"stats", CardStats},
		{"topProfitUsd", CardTopProfitUSD},
		{"topProfitPct", CardTopProfitPct},
		{"reviewNeeded", CardReviewNeeded},
	}
	backgrounds := map[string]bool{}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			c, err := ParseSummaryCard(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
			assert.Equal(t, tt.key, c.String())
			assert.NotEmpty(t, c.Background())
			backgrounds[c.Background()] = true
		})
	}
	assert.Len(t, backgrounds, 4)
}

func TestParseSummaryCardUnknown(t *testing.T) {
	_, err := ParseSummaryCard("TopProfitUSD")
	assert.ErrorIs(t, err, ErrUnknownSummaryCard)
}

func TestSummaryCardOutsideRange(t *testing.T) {
	c := SummaryCard(42)
	assert.Empty(t, c.Background())
	assert.Equal(t, "SummaryCard(42)", c.String())
}

func TestSignColor(t *testing.T) {
	assert.Equal(t, Positive, SignOf(0))
	assert.Equal(t, Positive, SignOf(12.5))
	assert.Equal(t, Negative, SignOf(-0.01))
	assert.Equal(t, "text-green-600", SignColor(3))
	assert.Equal(t, "text-red-600", SignColor(-3))
	assert.NotEqual(t, Positive.Color(), Negative.Color())
}
