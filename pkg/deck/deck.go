package deck

// Deck represents an ordered playing deck
type Deck struct {
	Cards []*Card `json:"cards"`
}

// New returns a new deck of cards in suit, then rank order.
// The deck is never shuffled, it's meant for enumerating hands.
func New() *Deck {
	d := &Deck{}
	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits {
		for rank := MinRank; rank <= MaxRank; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// CardsLeft returns the number of cards in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// EachHand calls fn with every combination of size cards from the deck.
// The hand passed to fn is reused between calls; clone it to keep it.
// Iteration stops early if fn returns false.
func (d *Deck) EachHand(size int, fn func(Hand) bool) {
	n := len(d.Cards)
	if size <= 0 || size > n {
		return
	}

	idx := make([]int, size)
	for i := range idx {
		idx[i] = i
	}

	hand := make(Hand, size)
	for {
		for i, j := range idx {
			hand[i] = d.Cards[j]
		}

		if !fn(hand) {
			return
		}

		// advance to the next combination in lexicographic order
		i := size - 1
		for i >= 0 && idx[i] == n-size+i {
			i--
		}

		if i < 0 {
			return
		}

		idx[i]++
		for j := i + 1; j < size; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
