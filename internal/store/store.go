// Package store defines the persistence boundary for reading history.
package store

import (
	"context"
	"errors"

	"github.com/arcano/oracle/internal/domain"
)

// ErrNotFound is returned when no reading carries the requested id.
var ErrNotFound = errors.New("reading not found")

// Store persists completed readings. Implementations must be safe for
// concurrent use.
type Store interface {
	// SaveReading persists a completed reading with its drawn cards.
	SaveReading(ctx context.Context, reading domain.Reading) error

	// ListReadings returns readings ordered newest first. A non-positive
	// limit returns everything.
	ListReadings(ctx context.Context, limit int) ([]domain.Reading, error)

	// GetReading fetches one reading by id, or ErrNotFound.
	GetReading(ctx context.Context, id string) (domain.Reading, error)

	// DeleteReading removes a reading and its cards. Deleting an unknown
	// id is not an error.
	DeleteReading(ctx context.Context, id string) error

	// Close releases underlying resources.
	Close() error
}
