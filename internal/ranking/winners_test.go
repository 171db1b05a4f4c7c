package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/showdown/internal/deck"
)

func TestWinningHands(t *testing.T) {
	tests := []struct {
		name  string
		hands []string
		want  []string
	}{
		{
			name:  "single hand wins by default",
			hands: []string{"KH AH 2D 3S 4C"},
			want:  []string{"KH AH 2D 3S 4C"},
		},
		{
			name:  "higher full house trips win",
			hands: []string{"2H 2D 2S 9C 9D", "3H 3D 3S 5C 5D"},
			want:  []string{"3H 3D 3S 5C 5D"},
		},
		{
			name:  "equal two pairs decided by kicker",
			hands: []string{"5H 5D 8S 8C KH", "5S 5C 8H 8D QC"},
			want:  []string{"5H 5D 8S 8C KH"},
		},
		{
			name:  "six-high straight beats ace-low straight",
			hands: []string{"AH 2D 3S 4C 5H", "2H 3D 4S 5C 6H"},
			want:  []string{"2H 3D 4S 5C 6H"},
		},
		{
			name:  "royal flush beats straight flush",
			hands: []string{"TH JH QH KH AH", "9S TS JS QS KS"},
			want:  []string{"TH JH QH KH AH"},
		},
		{
			name:  "identical royal flushes tie",
			hands: []string{"AH KH QH JH TH", "AS KS QS JS TS"},
			want:  []string{"AH KH QH JH TH", "AS KS QS JS TS"},
		},
		{
			name:  "three-way tie preserves input order",
			hands: []string{"AH 2D 3S 4C 5H", "AS 2C 3D 4H 5S", "2H 5D 8S JC KH", "AD 2S 3C 4D 5C"},
			want:  []string{"AH 2D 3S 4C 5H", "AS 2C 3D 4H 5S", "AD 2S 3C 4D 5C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WinningHands(tt.hands)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWinningHandsReturnsSameStrings(t *testing.T) {
	// Winners must be the caller's own handles, not re-rendered text.
	// Lowercase input would re-render differently if it were rebuilt.
	hands := []string{"th jh qh kh ah", "9S TS JS QS KS"}
	got, err := WinningHands(hands)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "th jh qh kh ah", got[0])
}

func TestWinnersEmptyInput(t *testing.T) {
	_, err := Winners(nil)
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = WinningHands([]string{})
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestWinnersWrongCardCount(t *testing.T) {
	_, err := WinningHands([]string{"AH KH QH JH TH", "2H 3D 4S 5C"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 4, verr.Count)
}

func TestWinnersMalformedHand(t *testing.T) {
	_, err := WinningHands([]string{"AH KH QH JH TH", "XX 3D 4S 5C 6H"})
	require.ErrorIs(t, err, deck.ErrInvalidRank)
}

func TestWinnersPreservesLabels(t *testing.T) {
	entries := []Entry{
		{Label: "alice", Cards: deck.MustParseHand("2H 2D 2S 9C 9D")},
		{Label: "bob", Cards: deck.MustParseHand("3H 3D 3S 5C 5D")},
		{Label: "carol", Cards: deck.MustParseHand("2C 5D 8S JC KH")},
	}

	winners, err := Winners(entries)
	require.NoError(t, err)
	require.Len(t, winners, 1)
	assert.Equal(t, "bob", winners[0].Label)
}

func TestWinnersManyHands(t *testing.T) {
	// Enough hands to exercise the concurrent classification path.
	hands := make([]string, 0, 40)
	for i := 0; i < 39; i++ {
		hands = append(hands, "2H 5D 8S JC KH")
	}
	hands = append(hands, "TH JH QH KH AH")

	got, err := WinningHands(hands)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "TH JH QH KH AH", got[0])
}
