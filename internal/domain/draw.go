package domain

import "errors"

var (
	// ErrDeckTooSmall means the deck has fewer cards than the spread has positions.
	ErrDeckTooSmall = errors.New("deck has fewer cards than spread positions")
	// ErrEmptySpread means the spread defines no positions.
	ErrEmptySpread = errors.New("spread has no positions")
)

// DrawCards fills every position of the spread with a unique card from the
// deck. Orientation is decided 50/50 per card. The returned slice is ordered
// by spread position, one card per position, so a completed draw always
// satisfies the reading-complete precondition of the interpretation pipeline.
func DrawCards(deck []Card, spread Spread, rng RNG) ([]DrawnCard, error) {
	n := len(spread.Positions)
	if n == 0 {
		return nil, ErrEmptySpread
	}
	if n > len(deck) {
		return nil, ErrDeckTooSmall
	}

	// Fisher-Yates over indices; only the first n are consumed.
	indices := make([]int, len(deck))
	for i := range indices {
		indices[i] = i
	}
	for i := len(indices) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}

	drawn := make([]DrawnCard, n)
	for i, pos := range spread.Positions {
		drawn[i] = DrawnCard{
			Card:       deck[indices[i]],
			Reversed:   rng.Intn(2) == 1,
			PositionID: pos.ID,
		}
	}
	return drawn, nil
}
