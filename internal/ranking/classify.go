package ranking

import (
	"sort"

	"github.com/lox/showdown/internal/deck"
)

// Classification is the result of ranking a five-card hand: a category
// plus the tie-break key that orders hands within the category. Keys
// for two hands of the same category always have the same length.
type Classification struct {
	Category Category
	Key      []deck.Rank
}

// Classify assigns a five-card hand its category and tie-break key.
// Card order does not matter. A hand without exactly five cards fails
// with a *ValidationError naming the actual count.
//
// Duplicate cards are not detected; callers are expected to hand over
// hands drawn from a real deck.
func Classify(cards []deck.Card) (Classification, error) {
	if len(cards) != HandSize {
		return Classification{}, &ValidationError{Count: len(cards)}
	}

	// Frequency tables over the 13 ranks (indexed by the high reading)
	// and the 4 suits, built in a single pass.
	var rankCounts [int(deck.Ace) + 1]int
	var suitCounts [4]int
	for _, c := range cards {
		rankCounts[c.Rank]++
		suitCounts[c.Suit]++
	}

	isFlush := false
	for _, n := range suitCounts {
		if n == HandSize {
			isFlush = true
			break
		}
	}

	high, isStraight := straightHigh(rankCounts)

	var pairs, trips, quads int
	for _, n := range rankCounts {
		switch n {
		case 2:
			pairs++
		case 3:
			trips++
		case 4:
			quads++
		}
	}

	var category Category
	switch {
	case isFlush && isStraight && high == deck.Ace:
		category = RoyalFlush
	case isFlush && isStraight:
		category = StraightFlush
	case quads == 1:
		category = FourOfAKind
	case trips == 1 && pairs == 1:
		category = FullHouse
	case isFlush:
		category = Flush
	case isStraight:
		category = Straight
	case trips == 1:
		category = ThreeOfAKind
	case pairs == 2:
		category = TwoPair
	case pairs == 1:
		category = OnePair
	default:
		category = HighCard
	}

	var key []deck.Rank
	switch category {
	case Straight, StraightFlush, RoyalFlush:
		// The straight's high card encodes the whole hand. For the
		// wheel that is Five, never Ace.
		key = []deck.Rank{high}
	default:
		key = groupKey(rankCounts)
	}

	return Classification{Category: category, Key: key}, nil
}

// straightHigh reports whether the rank counts form a straight and, if
// so, the straight's high card. Two independent checks combined with
// or, never modular arithmetic: a contiguous run of five distinct
// ranks, and the exact ace-low set A-2-3-4-5. There is no wraparound;
// Q-K-A-2-3 fails both checks.
func straightHigh(rankCounts [int(deck.Ace) + 1]int) (deck.Rank, bool) {
	// Ace-low straight: the rank set is exactly {A,2,3,4,5}.
	// Its high card is Five.
	if rankCounts[deck.Ace] == 1 &&
		rankCounts[deck.Two] == 1 &&
		rankCounts[deck.Three] == 1 &&
		rankCounts[deck.Four] == 1 &&
		rankCounts[deck.Five] == 1 {
		return deck.Five, true
	}

	for high := deck.Six; high <= deck.Ace; high++ {
		run := true
		for r := high - 4; r <= high; r++ {
			if rankCounts[r] != 1 {
				run = false
				break
			}
		}
		if run {
			return high, true
		}
	}

	return 0, false
}

// groupKey builds the uniform tie-break key: take the (rank, count)
// groups present in the hand, order them by count descending then rank
// descending, and flatten to the ranks alone. The one rule produces
// the right key shape for every category compared group by group:
// [quad, kicker], [trips, pair], [high pair, low pair, kicker],
// [pair, k1, k2, k3], and all five ranks descending for Flush and
// HighCard.
func groupKey(rankCounts [int(deck.Ace) + 1]int) []deck.Rank {
	type group struct {
		rank  deck.Rank
		count int
	}

	groups := make([]group, 0, HandSize)
	for r := deck.Two; r <= deck.Ace; r++ {
		if n := rankCounts[r]; n > 0 {
			groups = append(groups, group{rank: r, count: n})
		}
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})

	key := make([]deck.Rank, len(groups))
	for i, g := range groups {
		key[i] = g.rank
	}
	return key
}
