package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	card := Card{
		Rank: 2,
		Suit: Hearts,
	}

	assert.Equal(t, "2♡", card.String())

	card = Card{
		Rank: 11,
		Suit: Clubs,
	}

	assert.Equal(t, "J♣", card.String())

	card = Card{
		Rank: 12,
		Suit: Diamonds,
	}

	assert.Equal(t, "Q♢", card.String())

	card = Card{
		Rank: 13,
		Suit: Spades,
	}

	assert.Equal(t, "K♠", card.String())

	card = Card{
		Rank: 14,
		Suit: Spades,
	}

	assert.Equal(t, "A♠", card.String())
}

func TestCard_AceLowRank(t *testing.T) {
	assert.Equal(t, 1, CardFromString("14c").AceLowRank())
	assert.Equal(t, 13, CardFromString("13c").AceLowRank())
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		in   string
		rank int
		suit Suit
	}{
		{"2c", 2, Clubs},
		{"10h", 10, Hearts},
		{"Th", 10, Hearts},
		{"jd", Jack, Diamonds},
		{"QS", Queen, Spades},
		{"Kc", King, Clubs},
		{"As", Ace, Spades},
		{"14s", Ace, Spades},
		{" 9d ", 9, Diamonds},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			card, err := ParseCard(test.in)
			assert.NoError(t, err)
			assert.Equal(t, &Card{Rank: test.rank, Suit: test.suit}, card)
		})
	}

	for _, bad := range []string{"", "1c", "0h", "15s", "Ax", "c2", "10", "!2c"} {
		card, err := ParseCard(bad)
		assert.Nil(t, card, bad)
		assert.True(t, errors.Is(err, ErrInvalidCard), bad)
	}
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards("As,Kd, 2c")
	assert.NoError(t, err)
	assert.Equal(t, "14s,13d,2c", CardsToString(cards))

	cards, err = ParseCards("")
	assert.NoError(t, err)
	assert.Empty(t, cards)

	cards, err = ParseCards("As,Kd,2z")
	assert.Nil(t, cards)
	assert.EqualError(t, err, `invalid card: "2z"`)
}

func TestCardFromString(t *testing.T) {
	assert.Nil(t, CardFromString(""))
	assert.Equal(t, &Card{Rank: 5, Suit: Clubs}, CardFromString("5c"))
	assert.PanicsWithValue(t, "could not parse card: 5x", func() {
		CardFromString("5x")
	})
}

func TestCardsToString(t *testing.T) {
	cards := CardsFromString("2c,10d,11h,14s")
	assert.Equal(t, "2c,10d,11h,14s", CardsToString(cards))
	assert.Equal(t, "", CardToString(nil))
	assert.Empty(t, CardsFromString(""))
}

func TestValidRank(t *testing.T) {
	assert.False(t, ValidRank(1))
	assert.True(t, ValidRank(2))
	assert.True(t, ValidRank(14))
	assert.False(t, ValidRank(15))
}

func TestRankString(t *testing.T) {
	assert.Equal(t, "A", RankString(LowAce))
	assert.Equal(t, "10", RankString(10))
	assert.Equal(t, "Q", RankString(Queen))
}
