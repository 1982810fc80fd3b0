package domain

import "time"

const (
	ArcanaMajor = "major"
	ArcanaMinor = "minor"
)

const (
	SuitWands     = "wands"
	SuitCups      = "cups"
	SuitSwords    = "swords"
	SuitPentacles = "pentacles"
)

// Card represents a single card of the 78-card deck.
type Card struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number int    `json:"number"`
	Arcana string `json:"arcana"`
	Suit   string `json:"suit,omitempty"`
}

// DrawnCard is a card placed on a spread position, immutable once drawn.
type DrawnCard struct {
	Card
	Reversed   bool `json:"reversed"`
	PositionID int  `json:"positionId"`
}

// SpreadPosition is one slot of a spread with its semantic meaning.
type SpreadPosition struct {
	ID       int
	Name     string
	Question string
}

// Spread is a named tarot layout: an ordered set of positions to be
// filled with drawn cards. Static reference data, read-only during a reading.
type Spread struct {
	ID          string
	Name        string
	Description string
	Positions   []SpreadPosition
}

// PositionByID resolves a spread position. The second return value is false
// when no position carries the given id.
func (s Spread) PositionByID(id int) (SpreadPosition, bool) {
	for _, p := range s.Positions {
		if p.ID == id {
			return p, true
		}
	}
	return SpreadPosition{}, false
}

// Interpretation sources.
const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

// Reading is a completed consultation: the spread, the drawn cards and the
// interpretation text handed to the consultant.
type Reading struct {
	ID             string
	SpreadID       string
	Cards          []DrawnCard
	Question       string
	Interpretation string
	Source         string
	CreatedAt      time.Time
}

// RNG abstracts random number generation so card draws are deterministic
// under test.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}
