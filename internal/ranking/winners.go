package ranking

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/showdown/internal/deck"
)

// Entry is a labeled hand. The label is the caller's opaque handle,
// typically the original hand text, and is returned unchanged for
// winners.
type Entry struct {
	Label string
	Cards []deck.Card
}

// Winners classifies every entry and returns the subset tied for the
// strongest hand, preserving input order and labels. The result is
// never empty for non-empty input; more than one entry means a genuine
// tie. Zero entries fail with ErrEmptyInput.
func Winners(entries []Entry) ([]Entry, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyInput
	}

	classifications, err := classifyAll(entries)
	if err != nil {
		return nil, err
	}

	best := classifications[0]
	for _, c := range classifications[1:] {
		if c.Beats(best) {
			best = c
		}
	}

	// The filter runs only after the max is known; equal-classified
	// hands are interchangeable as the max, so a single pass suffices.
	winners := make([]Entry, 0, len(entries))
	for i, c := range classifications {
		if c.Ties(best) {
			winners = append(winners, entries[i])
		}
	}
	return winners, nil
}

// WinningHands judges textual hands ("4D 5D 6D 7D 8D") and returns the
// winning subset as the same strings that were passed in.
func WinningHands(hands []string) ([]string, error) {
	entries := make([]Entry, len(hands))
	for i, h := range hands {
		cards, err := deck.ParseHand(h)
		if err != nil {
			return nil, err
		}
		entries[i] = Entry{Label: h, Cards: cards}
	}

	won, err := Winners(entries)
	if err != nil {
		return nil, err
	}

	labels := make([]string, len(won))
	for i, e := range won {
		labels[i] = e.Label
	}
	return labels, nil
}

// classifyAll classifies entries concurrently. Each hand depends on
// nothing but its own five cards, so the only coordination is the
// join: every goroutine writes only its own output slot.
func classifyAll(entries []Entry) ([]Classification, error) {
	out := make([]Classification, len(entries))

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.NumCPU())

	for i, e := range entries {
		g.Go(func() error {
			c, err := Classify(e.Cards)
			if err != nil {
				return fmt.Errorf("hand %q: %w", e.Label, err)
			}
			out[i] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
