package poker

import (
	"fmt"
)

// Category is a poker hand category, i.e., straight flush
type Category int

// Constants for category, ordered from worst to best
const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// Categories contains every category from worst to best
var Categories = []Category{
	HighCard,
	OnePair,
	TwoPair,
	ThreeOfAKind,
	Straight,
	Flush,
	FullHouse,
	FourOfAKind,
	StraightFlush,
}

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

// Base returns the lowest score a hand in this category can have
func (c Category) Base() Score {
	return Score(c) * categoryBase
}

// categoryBase is the spacing between two categories.
// It must exceed the largest possible tiebreak (a high card hand of five aces, 579,194)
const categoryBase = 1000000

// radix is the weight of a single rank digit in a tiebreak
const radix = 14

// Score is the strength of a five-card hand.
// A higher score always beats a lower score, and equal scores are a tie
type Score int64

// Category returns the category the score belongs to
func (s Score) Category() Category {
	return Category(s / categoryBase)
}

// Tiebreak returns the value of the score within its category
func (s Score) Tiebreak() int64 {
	return int64(s % categoryBase)
}

// Compare returns -1 if s loses to other, 1 if s beats other, and 0 on a tie
func (s Score) Compare(other Score) int {
	switch {
	case s < other:
		return -1
	case s > other:
		return 1
	default:
		return 0
	}
}
