// Package decks loads the card catalog from embedded JSON files.
package decks

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/arcano/oracle/internal/domain"
)

//go:embed data/*.json
var deckFS embed.FS

// DefaultDeckID names the deck used when none is requested.
const DefaultDeckID = "rider_waite"

// registry maps deck IDs to their JSON filenames inside data/.
var registry = map[string]string{
	"rider_waite": "data/rider_waite.json",
}

// EmbeddedStore serves decks parsed once from the embedded files.
type EmbeddedStore struct {
	once  sync.Once
	decks map[string][]domain.Card
	err   error
}

// NewEmbeddedStore creates a store over the embedded catalog.
func NewEmbeddedStore() *EmbeddedStore {
	return &EmbeddedStore{}
}

func (s *EmbeddedStore) init() {
	s.decks = make(map[string][]domain.Card, len(registry))
	for id, filename := range registry {
		raw, err := deckFS.ReadFile(filename)
		if err != nil {
			s.err = fmt.Errorf("read embedded deck %s: %w", id, err)
			return
		}
		var cards []domain.Card
		if err := json.Unmarshal(raw, &cards); err != nil {
			s.err = fmt.Errorf("parse embedded deck %s: %w", id, err)
			return
		}
		s.decks[id] = cards
	}
}

// Deck returns the cards of a deck by id.
func (s *EmbeddedStore) Deck(deckID string) ([]domain.Card, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return nil, s.err
	}
	deck, ok := s.decks[deckID]
	if !ok {
		return nil, fmt.Errorf("unknown deck %q", deckID)
	}
	return deck, nil
}
