package poker

import (
	"fmt"
	"handstrength-server/pkg/deck"
	"strconv"
)

var rankNames = map[int]string{
	deck.Jack:  "Jack",
	deck.Queen: "Queen",
	deck.King:  "King",
	deck.Ace:   "Ace",
}

func rankName(rank int) string {
	if name, ok := rankNames[rank]; ok {
		return name
	}

	return strconv.Itoa(rank)
}

func rankPlural(rank int) string {
	if rank == 6 {
		return "6es"
	}

	return rankName(rank) + "s"
}

// Describe returns a human readable description of the hand, i.e., "Full house, 7s full of 2s"
func (h *HandAnalyzer) Describe() string {
	high, _ := h.GetHighCard()

	switch h.category {
	case StraightFlush:
		if high == deck.Ace {
			return "Royal flush"
		}

		return fmt.Sprintf("%s, %s high", h.category, rankName(high))
	case FourOfAKind:
		return fmt.Sprintf("%s, %s", h.category, rankPlural(h.quads[0]))
	case FullHouse:
		return fmt.Sprintf("%s, %s full of %s", h.category, rankPlural(h.trips[0]), rankPlural(h.pairs[0]))
	case Flush, Straight:
		return fmt.Sprintf("%s, %s high", h.category, rankName(high))
	case ThreeOfAKind:
		return fmt.Sprintf("%s, %s", h.category, rankPlural(h.trips[0]))
	case TwoPair:
		return fmt.Sprintf("%s, %s and %s", h.category, rankPlural(h.pairs[0]), rankPlural(h.pairs[1]))
	case OnePair:
		return fmt.Sprintf("Pair of %s", rankPlural(h.pairs[0]))
	default:
		return fmt.Sprintf("%s, %s", h.category, rankName(high))
	}
}
