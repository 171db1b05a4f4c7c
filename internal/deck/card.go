package deck

import (
	"errors"
	"fmt"
)

// Suit represents a card suit. Suits carry no ordering anywhere in
// standard poker; a card keeps its suit only for flush detection and
// display.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the single-letter suit code
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Rank represents a card rank using the high reading, Ace = 14.
// The ace-low reading (Ace as 1) exists only inside straight detection
// and never appears in a Rank value.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the single-letter rank code
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// CouldBeLow reports whether the rank may additionally be read as 1.
// Only the Ace qualifies, and only for detecting the A-2-3-4-5 straight.
func (r Rank) CouldBeLow() bool {
	return r == Ace
}

// Construction and parse failures.
var (
	ErrInvalidRank = errors.New("invalid rank")
	ErrInvalidSuit = errors.New("invalid suit")
)

// Card is an immutable rank and suit pair
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card, rejecting out-of-range rank or suit
func NewCard(rank Rank, suit Suit) (Card, error) {
	if rank < Two || rank > Ace {
		return Card{}, fmt.Errorf("%w: %d (must be %d-%d)", ErrInvalidRank, int(rank), int(Two), int(Ace))
	}
	if suit < Clubs || suit > Spades {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidSuit, int(suit))
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// String returns the card code (e.g., "AH" for the Ace of Hearts)
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}
