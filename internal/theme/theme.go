// Package theme maps semantic keys to the CSS class tokens the pages use.
package theme

import (
	"errors"
	"fmt"
)

// RankColors holds the badge classes for 1st, 2nd and 3rd place.
var RankColors = [3]string{
	"bg-yellow-400 text-yellow-900",
	"bg-gray-300 text-gray-800",
	"bg-amber-600 text-amber-50",
}

// ErrRankOutOfRange is returned for a rank without a badge color.
var ErrRankOutOfRange = errors.New("rank out of range")

// RankColor returns the badge class for a zero-based rank.
func RankColor(rank int) (string, error) {
	if rank < 0 || rank >= len(RankColors) {
		return "", fmt.Errorf("%w: %d", ErrRankOutOfRange, rank)
	}
	return RankColors[rank], nil
}

// SummaryCard identifies one of the dashboard summary cards.
type SummaryCard int

// The dashboard summary cards, in display order.
const (
	CardStats SummaryCard = iota
	CardTopProfitUSD
	CardTopProfitPct
	CardReviewNeeded
)

// ErrUnknownSummaryCard is returned by ParseSummaryCard for unknown keys.
var ErrUnknownSummaryCard = errors.New("unknown summary card")

var summaryCardKeys = [...]string{
	CardStats:        "stats",
	CardTopProfitUSD: "topProfitUsd",
	CardTopProfitPct: "topProfitPct",
	CardReviewNeeded: "reviewNeeded",
}

var summaryCardBackgrounds = [...]string{
	CardStats:        "bg-blue-50",
	CardTopProfitUSD: "bg-green-50",
	CardTopProfitPct: "bg-purple-50",
	CardReviewNeeded: "bg-orange-50",
}

// ParseSummaryCard resolves a card key such as "topProfitUsd".
func ParseSummaryCard(key string) (SummaryCard, error) {
	for i, k := range summaryCardKeys {
		if k == key {
			return SummaryCard(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSummaryCard, key)
}

func (c SummaryCard) String() string {
	if !c.valid() {
		return fmt.Sprintf("SummaryCard(%d)", int(c))
	}
	return summaryCardKeys[c]
}

// Background returns the card's background class, or "" for a value outside
// the defined cards.
func (c SummaryCard) Background() string {
	if !c.valid() {
		return ""
	}
	return summaryCardBackgrounds[c]
}

func (c SummaryCard) valid() bool {
	return c >= 0 && int(c) < len(summaryCardKeys)
}

// Sign classifies a numeric delta for coloring.
type Sign int

// Positive covers zero as well.
const (
	Positive Sign = iota
	Negative
)

var signColors = map[Sign]string{
	Positive: "text-green-600",
	Negative: "text-red-600",
}

// SignOf treats zero as positive.
func SignOf(v float64) Sign {
	if v < 0 {
		return Negative
	}
	return Positive
}

func (s Sign) Color() string {
	return signColors[s]
}

// SignColor is SignOf(v).Color().
func SignColor(v float64) string {
	return SignOf(v).Color()
}
