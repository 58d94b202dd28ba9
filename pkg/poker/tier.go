package poker

import (
	"fmt"
	"handstrength-server/pkg/deck"
	"sort"
)

// Tier is a group of hands with the same score
type Tier struct {
	Score    Score
	Category Category

	// indexes of the hands as passed into RankHands, in ascending order
	Hands []int
}

// RankHands groups the hands into tiers, ordered from best to worst
// Tied hands share a tier. If any hand is invalid, an error naming it is returned
func (e *Evaluator) RankHands(hands ...[]*deck.Card) ([]Tier, error) {
	byScore := make(map[Score]*Tier)
	for i, hand := range hands {
		score, err := e.Evaluate(hand)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i, err)
		}

		t, ok := byScore[score]
		if !ok {
			t = &Tier{
				Score:    score,
				Category: score.Category(),
				Hands:    make([]int, 0, 1),
			}
			byScore[score] = t
		}

		t.Hands = append(t.Hands, i)
	}

	tiers := make([]Tier, 0, len(byScore))
	for _, t := range byScore {
		tiers = append(tiers, *t)
	}

	sort.Sort(sort.Reverse(sortByScore(tiers)))

	return tiers, nil
}

// Winners returns the indexes of the best hands, or nil if there are no tiers
func Winners(tiers []Tier) []int {
	if len(tiers) == 0 {
		return nil
	}

	return tiers[0].Hands
}

type sortByScore []Tier

func (s sortByScore) Len() int {
	return len(s)
}

func (s sortByScore) Less(i, j int) bool {
	return s[i].Score < s[j].Score
}

func (s sortByScore) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
