package poker

import (
	"fmt"
	"handstrength-server/pkg/deck"
	"sort"
)

// HandAnalyzer classifies and scores a five-card hand
type HandAnalyzer struct {
	// ascending by rank
	cards []*deck.Card
	wheel WheelRank

	// rank groups, each ordered from highest to lowest rank
	quads   []int
	trips   []int
	pairs   []int
	singles []int

	flush    bool
	straight int
	isWheel  bool

	category Category
	score    Score
}

// newHandAnalyzer validates the cards and analyzes them
// The caller's slice is never modified
func newHandAnalyzer(cards []*deck.Card, wheel WheelRank) (*HandAnalyzer, error) {
	if len(cards) != HandSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHandSize, len(cards))
	}

	for i, card := range cards {
		if card == nil {
			return nil, fmt.Errorf("%w: position %d", ErrNilCard, i)
		}

		if !deck.ValidRank(card.Rank) {
			return nil, fmt.Errorf("%w: got %d at position %d", ErrInvalidRank, card.Rank, i)
		}
	}

	newCards := make([]*deck.Card, len(cards))
	copy(newCards, cards)

	sort.Sort(sortByRank(newCards))

	h := &HandAnalyzer{
		cards: newCards,
		wheel: wheel,
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateHand()

	return h, nil
}

// analyzeHand computes the rank multiplicities, the flush flag, and the straight in a single pass
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	counts := make(map[int]int, HandSize)
	suit := h.cards[0].Suit
	h.flush = true
	for _, card := range h.cards {
		counts[card.Rank]++
		if card.Suit != suit {
			h.flush = false
		}
	}

	// walk from the highest card so every group is ordered best first
	for i := len(h.cards) - 1; i >= 0; i-- {
		rank := h.cards[i].Rank
		n, ok := counts[rank]
		if !ok {
			continue
		}

		delete(counts, rank)

		switch n {
		case 1:
			h.singles = append(h.singles, rank)
		case 2:
			h.pairs = append(h.pairs, rank)
		case 3:
			h.trips = append(h.trips, rank)
		default:
			// five of a rank only happens with duplicate cards, and there is nothing stronger to call it
			h.quads = append(h.quads, rank)
		}
	}

	h.checkStraight()
}

// calculateHand matches the rank groups and the straight and flush flags against every category
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateHand() {
	switch {
	case h.straight > 0 && h.flush:
		h.category = StraightFlush
		h.score = StraightFlush.Base() + Score(h.straightValue())
	case len(h.quads) > 0:
		h.category = FourOfAKind
		h.score = FourOfAKind.Base() + Score(h.quads[0])
	case len(h.trips) > 0 && len(h.pairs) > 0:
		h.category = FullHouse
		h.score = FullHouse.Base() + Score(h.trips[0])
	case h.flush:
		h.category = Flush
		h.score = Flush.Base() + Score(h.highCardValue())
	case h.straight > 0:
		h.category = Straight
		h.score = Straight.Base() + Score(h.straightValue())
	case len(h.trips) > 0:
		h.category = ThreeOfAKind
		h.score = ThreeOfAKind.Base() + Score(h.trips[0])
	case len(h.pairs) == 2:
		h.category = TwoPair
		h.score = TwoPair.Base() + Score(radix*radix*h.pairs[0]+radix*h.pairs[1]+h.singles[0])
	case len(h.pairs) == 1:
		h.category = OnePair
		h.score = OnePair.Base() + Score(radix*radix*radix*h.pairs[0]+weigh(h.singles))
	default:
		h.category = HighCard
		h.score = HighCard.Base() + Score(h.highCardValue())
	}
}

// highCardValue weighs every card, the lowest card at 14^0 up to the highest at 14^4
func (h *HandAnalyzer) highCardValue() int {
	return weigh(h.ranksDescending())
}

func (h *HandAnalyzer) straightValue() int {
	if h.wheel == WheelAceHigh {
		return h.highCardValue()
	}

	return h.straight
}

// weigh reads ranks, ordered from most to least significant, as the digits of a radix-14 number
func weigh(ranks []int) int {
	value := 0
	for _, rank := range ranks {
		value = value*radix + rank
	}

	return value
}

// GetCategory returns the category of the hand
func (h *HandAnalyzer) GetCategory() Category {
	return h.category
}

// GetScore returns the score of the hand
func (h *HandAnalyzer) GetScore() Score {
	return h.score
}

// GetStraightFlush will return the top rank of the straight flush, if possible
func (h *HandAnalyzer) GetStraightFlush() (int, bool) {
	if h.straight > 0 && h.flush {
		return h.straight, true
	}

	return 0, false
}

// GetFourOfAKind will return the rank of the four of a kind, if possible
func (h *HandAnalyzer) GetFourOfAKind() (int, bool) {
	if len(h.quads) > 0 {
		return h.quads[0], true
	}

	return 0, false
}

// GetFullHouse will return the ranks of the trips and the pair, if possible
func (h *HandAnalyzer) GetFullHouse() ([]int, bool) {
	if len(h.trips) == 0 || len(h.pairs) == 0 {
		return nil, false
	}

	return []int{h.trips[0], h.pairs[0]}, true
}

// GetFlush will return the ranks of the flush from highest to lowest, if possible
func (h *HandAnalyzer) GetFlush() ([]int, bool) {
	if !h.flush {
		return nil, false
	}

	return h.ranksDescending(), true
}

// GetStraight will return the top rank of the straight, if possible
// The top rank of the wheel (A-2-3-4-5) is 5
func (h *HandAnalyzer) GetStraight() (int, bool) {
	if h.straight > 0 {
		return h.straight, true
	}

	return 0, false
}

// GetThreeOfAKind will return the rank of the three of a kind, if possible
func (h *HandAnalyzer) GetThreeOfAKind() (int, bool) {
	if len(h.trips) > 0 {
		return h.trips[0], true
	}

	return 0, false
}

// GetTwoPair will return the ranks of both pairs, highest first, if possible
func (h *HandAnalyzer) GetTwoPair() ([]int, bool) {
	if len(h.pairs) == 2 {
		return h.pairs[0:2], true
	}

	return nil, false
}

// GetPair will return the rank of the best pair, if possible
func (h *HandAnalyzer) GetPair() (int, bool) {
	if len(h.pairs) > 0 {
		return h.pairs[0], true
	}

	return 0, false
}

// GetHighCard will return the high card
func (h *HandAnalyzer) GetHighCard() (int, bool) {
	if h.isWheel {
		return h.straight, true
	}

	return h.cards[len(h.cards)-1].Rank, true
}

// GetKickers returns the unpaired ranks from highest to lowest
func (h *HandAnalyzer) GetKickers() []int {
	kickers := make([]int, len(h.singles))
	copy(kickers, h.singles)
	return kickers
}

// GetCards returns the cards ordered by rank, lowest first
func (h *HandAnalyzer) GetCards() deck.Hand {
	return deck.Hand(h.cards).Clone()
}

func (h *HandAnalyzer) ranksDescending() []int {
	ranks := make([]int, len(h.cards))
	for i, card := range h.cards {
		ranks[len(h.cards)-1-i] = card.Rank
	}

	return ranks
}
