package deck

import (
	"fmt"
	"strings"
)

// ParseCard parses a single card code such as "AH" or "TD".
// Rank codes: 2-9, T, J, Q, K, A ("10" is accepted as an alias for T).
// Suit codes: C (clubs), D (diamonds), H (hearts), S (spades).
// Input is case insensitive.
func ParseCard(s string) (Card, error) {
	if len(s) < 2 || len(s) > 3 {
		return Card{}, fmt.Errorf("%w: card code %q must be 2-3 characters", ErrInvalidRank, s)
	}

	rank, err := parseRank(s[:len(s)-1])
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", s, err)
	}

	suit, err := parseSuit(s[len(s)-1])
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", s, err)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseHand parses a hand of card codes separated by spaces, e.g.
// "4D 5D 6D 7D 8D". The card count is not enforced here; hand-size
// validation happens at classification entry so the error can name
// the actual count. Duplicate cards are not rejected.
func ParseHand(s string) ([]Card, error) {
	codes := strings.Fields(s)
	if len(codes) == 0 {
		return nil, fmt.Errorf("%w: empty hand %q", ErrInvalidRank, s)
	}

	cards := make([]Card, 0, len(codes))
	for _, code := range codes {
		card, err := ParseCard(code)
		if err != nil {
			return nil, fmt.Errorf("hand %q: %w", s, err)
		}
		cards = append(cards, card)
	}

	return cards, nil
}

// MustParseHand parses a hand and panics on error (for tests)
func MustParseHand(s string) []Card {
	cards, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return cards
}

// FormatHand renders cards in the canonical space-separated form
func FormatHand(cards []Card) string {
	codes := make([]string, len(cards))
	for i, card := range cards {
		codes[i] = card.String()
	}
	return strings.Join(codes, " ")
}

func parseRank(s string) (Rank, error) {
	switch strings.ToUpper(s) {
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "T", "10":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	default:
		return 0, fmt.Errorf("%w: unknown rank %q", ErrInvalidRank, s)
	}
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 'C', 'c':
		return Clubs, nil
	case 'D', 'd':
		return Diamonds, nil
	case 'H', 'h':
		return Hearts, nil
	case 'S', 's':
		return Spades, nil
	default:
		return 0, fmt.Errorf("%w: unknown suit %q", ErrInvalidSuit, string(c))
	}
}
