package poker

import (
	"fmt"
	"handstrength-server/pkg/deck"
	"strings"
)

// WheelRank decides how the wheel (A-2-3-4-5) is scored against other straights
type WheelRank int

// WheelRank constants
const (
	// WheelFive scores every straight by its top rank, with the wheel topping out at 5
	WheelFive WheelRank = iota

	// WheelAceHigh scores every straight like a high card hand with the ace counted as 14,
	// which places the wheel just under broadway
	WheelAceHigh
)

// String returns the configuration name of the wheel rank
func (w WheelRank) String() string {
	switch w {
	case WheelFive:
		return "five"
	case WheelAceHigh:
		return "ace-high"
	default:
		panic(fmt.Sprintf("unknown wheel rank: %d", w))
	}
}

// ParseWheelRank parses "five" or "ace-high". An empty string is WheelFive
func ParseWheelRank(s string) (WheelRank, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "five", "5":
		return WheelFive, nil
	case "ace-high", "acehigh", "14":
		return WheelAceHigh, nil
	default:
		return 0, fmt.Errorf("unknown wheel rank: %q", s)
	}
}

// Option configures an Evaluator
type Option func(e *Evaluator)

// WithWheelRank sets how the wheel is scored
func WithWheelRank(w WheelRank) Option {
	return func(e *Evaluator) {
		e.wheel = w
	}
}

// Evaluator scores five-card hands
// An Evaluator is immutable and safe for concurrent use
type Evaluator struct {
	wheel WheelRank
}

// NewEvaluator returns a new Evaluator
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		wheel: WheelFive,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// WheelRank returns how the evaluator scores the wheel
func (e *Evaluator) WheelRank() WheelRank {
	return e.wheel
}

// Analyze classifies the hand
func (e *Evaluator) Analyze(cards []*deck.Card) (*HandAnalyzer, error) {
	return newHandAnalyzer(cards, e.wheel)
}

// Evaluate returns the score of the hand
// The hand must contain exactly five cards
func (e *Evaluator) Evaluate(cards []*deck.Card) (Score, error) {
	h, err := e.Analyze(cards)
	if err != nil {
		return 0, err
	}

	return h.GetScore(), nil
}

// Compare returns -1 if a loses to b, 1 if a beats b, and 0 on a tie
func (e *Evaluator) Compare(a, b []*deck.Card) (int, error) {
	scoreA, err := e.Evaluate(a)
	if err != nil {
		return 0, fmt.Errorf("first hand: %w", err)
	}

	scoreB, err := e.Evaluate(b)
	if err != nil {
		return 0, fmt.Errorf("second hand: %w", err)
	}

	return scoreA.Compare(scoreB), nil
}

var defaultEvaluator = NewEvaluator()

// Evaluate returns the score of the hand using the default evaluator
func Evaluate(cards []*deck.Card) (Score, error) {
	return defaultEvaluator.Evaluate(cards)
}

// Analyze classifies the hand using the default evaluator
func Analyze(cards []*deck.Card) (*HandAnalyzer, error) {
	return defaultEvaluator.Analyze(cards)
}

// Compare compares two hands using the default evaluator
func Compare(a, b []*deck.Card) (int, error) {
	return defaultEvaluator.Compare(a, b)
}

// RankHands ranks the hands using the default evaluator
func RankHands(hands ...[]*deck.Card) ([]Tier, error) {
	return defaultEvaluator.RankHands(hands...)
}
