package ranking

import (
	"errors"
	"fmt"
)

// HandSize is the number of cards in a poker hand
const HandSize = 5

// ErrEmptyInput is returned when winner selection receives no hands;
// an undefined winner is not representable.
var ErrEmptyInput = errors.New("no hands to judge")

// ValidationError reports a hand that does not contain exactly five
// cards. A wrong-sized hand is a caller bug, not a recoverable
// condition, so the error names the actual count.
type ValidationError struct {
	Count int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("hand must contain exactly %d cards, got %d", HandSize, e.Count)
}
