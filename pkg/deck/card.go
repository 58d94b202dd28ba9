package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCard is returned when a card string cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Suits contains every suit in deck order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
const (
	Jack    = 11
	Queen   = 12
	King    = 13
	Ace     = 14
	HighAce = Ace
	LowAce  = 1
)

// rank bounds
const (
	MinRank = 2
	MaxRank = Ace
)

func (c *Card) String() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		suit = "?"
	}

	return fmt.Sprintf("%s%s", RankString(c.Rank), suit)
}

// RankString returns the short name of a rank (2-10, J, Q, K, A)
func RankString(rank int) string {
	switch rank {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace, LowAce:
		return "A"
	default:
		return strconv.Itoa(rank)
	}
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// AceLowRank return the rank where Ace is considered low instead of high
func (c *Card) AceLowRank() int {
	if c.Rank == Ace {
		return LowAce
	}

	return c.Rank
}

// ValidRank returns true if the rank is within 2 and 14
func ValidRank(rank int) bool {
	return rank >= MinRank && rank <= MaxRank
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4]|[tjqka])([cdhs])\z`)

// ParseCard returns a Card from the string.
// The string must be in the format of <rank><suit> where rank is 2-14 or one of T, J, Q, K, A
// and suit is one of c, d, h, s
func ParseCard(s string) (*Card, error) {
	s = strings.TrimSpace(s)
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	var rank int
	switch strings.ToLower(match[1]) {
	case "t":
		rank = 10
	case "j":
		rank = Jack
	case "q":
		rank = Queen
	case "k":
		rank = King
	case "a":
		rank = Ace
	default:
		r, err := strconv.Atoi(match[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
		}
		rank = r
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	return &Card{
		Rank: rank,
		Suit: suit,
	}, nil
}

// ParseCards parses a comma separated list of cards
func ParseCards(s string) ([]*Card, error) {
	if strings.TrimSpace(s) == "" {
		return []*Card{}, nil
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, cs := range cardStrings {
		card, err := ParseCard(cs)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardFromString returns a Card from the string.
// It panics if the string is not a valid card, so it should be used with literals only
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	card, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	return card
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
