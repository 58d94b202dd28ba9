package poker

import "handstrength-server/pkg/deck"

// wheel is the A-2-3-4-5 straight, in ascending rank order with the ace high
var wheel = [HandSize]int{2, 3, 4, 5, deck.Ace}

// checkStraight will check for a straight
// If one has been found, then the top rank of the straight will be assigned to h.straight
// Requires h.cards to be sorted by rank and h.singles to be populated
func (h *HandAnalyzer) checkStraight() {
	// any repeated rank rules out a straight
	if len(h.singles) != HandSize {
		return
	}

	low := h.cards[0].Rank
	high := h.cards[HandSize-1].Rank
	if high-low == HandSize-1 {
		h.straight = high
		return
	}

	for i, card := range h.cards {
		if card.Rank != wheel[i] {
			return
		}
	}

	h.isWheel = true
	h.straight = wheel[HandSize-2]
}
