package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandAnalyzer_Describe(t *testing.T) {
	tests := map[string]string{
		"14s,13s,12s,11s,10s": "Royal flush",
		"9h,10h,11h,12h,13h":  "Straight flush, King high",
		"14d,2d,3d,4d,5d":     "Straight flush, 5 high",
		"5c,5d,5h,5s,9c":      "Four of a kind, 5s",
		"7c,7d,7h,2s,2c":      "Full house, 7s full of 2s",
		"6c,6d,6h,12s,12c":    "Full house, 6es full of Queens",
		"2c,9c,11c,4c,13c":    "Flush, King high",
		"2s,3d,4h,5c,14s":     "Straight, 5 high",
		"9c,9d,9h,2s,13c":     "Three of a kind, 9s",
		"5c,5d,6h,6d,3h":      "Two pair, 6es and 5s",
		"14c,14d,11h,11s,3h":  "Two pair, Aces and Jacks",
		"7c,7d,14h,9s,2c":     "Pair of 7s",
		"14c,2c,5c,8d,3h":     "High card, Ace",
	}

	for cards, expected := range tests {
		t.Run(cards, func(t *testing.T) {
			assert.Equal(t, expected, analyze(t, cards).Describe())
		})
	}
}
