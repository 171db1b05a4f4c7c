package ranking

// Compare orders two classifications and returns:
//
//	-1 if c is weaker than other
//	 0 if the hands are exactly tied
//	 1 if c is stronger than other
//
// Category decides first; within a category the tie-break keys are
// compared element by element and the first difference decides. The
// relation is a strict weak ordering, so it is safe for sorting and
// maximum selection.
func (c Classification) Compare(other Classification) int {
	if c.Category != other.Category {
		if c.Category < other.Category {
			return -1
		}
		return 1
	}

	for i := 0; i < len(c.Key) && i < len(other.Key); i++ {
		if c.Key[i] != other.Key[i] {
			if c.Key[i] < other.Key[i] {
				return -1
			}
			return 1
		}
	}

	return 0
}

// Beats returns true if this classification wins against the other
func (c Classification) Beats(other Classification) bool {
	return c.Compare(other) > 0
}

// Ties returns true if both classifications are equal in strength
func (c Classification) Ties(other Classification) bool {
	return c.Compare(other) == 0
}
