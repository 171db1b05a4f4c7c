package ranking

import (
	"testing"

	"github.com/lox/showdown/internal/deck"
)

func classify(t *testing.T, hand string) Classification {
	t.Helper()
	c, err := Classify(deck.MustParseHand(hand))
	if err != nil {
		t.Fatalf("Classify(%q) unexpected error: %v", hand, err)
	}
	return c
}

func TestCompareAcrossCategories(t *testing.T) {
	// Weakest to strongest, one hand per category.
	ladder := []string{
		"2H 5D 8S JC KH", // high card
		"4H 4S 9D QC 2H", // one pair
		"5H 5D 8S 8C KH", // two pair
		"7H 7D 7S KC 2H", // three of a kind
		"6H 7D 8S 9C TH", // straight
		"2H 6H 9H JH KH", // flush
		"3H 3D 3S 5C 5D", // full house
		"9H 9D 9S 9C 2H", // four of a kind
		"4D 5D 6D 7D 8D", // straight flush
		"TH JH QH KH AH", // royal flush
	}

	for i := 0; i < len(ladder); i++ {
		for j := 0; j < len(ladder); j++ {
			a, b := classify(t, ladder[i]), classify(t, ladder[j])
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got := a.Compare(b); got != want {
				t.Errorf("Compare(%q, %q) = %d, want %d", ladder[i], ladder[j], got, want)
			}
		}
	}
}

func TestCompareWithinCategory(t *testing.T) {
	tests := []struct {
		name   string
		weaker string
		strong string
	}{
		{"higher pair wins", "4H 4S 9D QC 2H", "5H 5S 9C QD 2S"},
		{"pair kicker cascade", "8H 8S 9D QC 2H", "8C 8D 9S QD 3H"},
		{"two pair high pair decides", "5H 5D 8S 8C KH", "4H 4D 9S 9C 2H"},
		{"two pair kicker decides", "5S 5C 8H 8D QC", "5H 5D 8S 8C KH"},
		{"trip rank decides full house", "2H 2D 2S 9C 9D", "3H 3D 3S 5C 5D"},
		{"quad kicker decides", "9H 9D 9S 9C 2H", "9H 9D 9S 9C KH"},
		{"six-high straight beats ace-low straight", "AH 2D 3S 4C 5H", "2H 3D 4S 5C 6H"},
		{"flush compares fifth card", "2H 6H 9H JH KH", "3S 6S 9S JS KS"},
		{"straight flush high card decides", "4D 5D 6D 7D 8D", "5H 6H 7H 8H 9H"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weaker, strong := classify(t, tt.weaker), classify(t, tt.strong)
			if got := weaker.Compare(strong); got != -1 {
				t.Errorf("Compare(%q, %q) = %d, want -1", tt.weaker, tt.strong, got)
			}
			if got := strong.Compare(weaker); got != 1 {
				t.Errorf("Compare(%q, %q) = %d, want 1", tt.strong, tt.weaker, got)
			}
		})
	}
}

func TestCompareEqual(t *testing.T) {
	tests := []struct {
		a, b string
	}{
		{"TH JH QH KH AH", "TS JS QS KS AS"}, // royal flushes
		{"AH 2D 3S 4C 5H", "AS 2C 3D 4H 5S"}, // ace-low straights
		{"5H 5D 8S 8C KH", "5S 5C 8H 8D KD"}, // identical two pair
	}

	for _, tt := range tests {
		a, b := classify(t, tt.a), classify(t, tt.b)
		if got := a.Compare(b); got != 0 {
			t.Errorf("Compare(%q, %q) = %d, want 0", tt.a, tt.b, got)
		}
		if !a.Ties(b) {
			t.Errorf("Ties(%q, %q) = false, want true", tt.a, tt.b)
		}
	}
}

func TestCompareReflexive(t *testing.T) {
	hands := []string{
		"2H 5D 8S JC KH",
		"AH 2D 3S 4C 5H",
		"3H 3D 3S 5C 5D",
		"TH JH QH KH AH",
	}
	for _, hand := range hands {
		c := classify(t, hand)
		if got := c.Compare(c); got != 0 {
			t.Errorf("Compare(%q, itself) = %d, want 0", hand, got)
		}
	}
}

func TestCompareTransitive(t *testing.T) {
	a := classify(t, "4H 4S 9D QC 2H") // pair of fours
	b := classify(t, "8H 8S 9D QC 2H") // pair of eights
	c := classify(t, "5H 5D 8S 8C KH") // two pair

	if !(a.Compare(b) < 0 && b.Compare(c) < 0 && a.Compare(c) < 0) {
		t.Error("ordering is not transitive over pair < pair < two pair")
	}
}
