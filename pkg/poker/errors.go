package poker

import "errors"

// HandSize is the only supported number of cards in a hand
const HandSize = 5

// ErrInvalidHandSize is returned when a hand does not contain exactly HandSize cards
var ErrInvalidHandSize = errors.New("size of hand must be 5")

// ErrInvalidRank is returned when a card's rank is outside of 2 and 14
var ErrInvalidRank = errors.New("card rank must be between 2 and 14")

// ErrNilCard is returned when a hand contains a nil card
var ErrNilCard = errors.New("hand contains a nil card")
