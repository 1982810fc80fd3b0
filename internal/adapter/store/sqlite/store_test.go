package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcano/oracle/internal/adapter/store/sqlite"
	"github.com/arcano/oracle/internal/domain"
	"github.com/arcano/oracle/internal/store"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "readings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleReading(id string, createdAt time.Time) domain.Reading {
	return domain.Reading{
		ID:       id,
		SpreadID: "three-card",
		Cards: []domain.DrawnCard{
			{Card: domain.Card{ID: "the-fool", Name: "The Fool", Number: 0, Arcana: domain.ArcanaMajor}, Reversed: false, PositionID: 0},
			{Card: domain.Card{ID: "death", Name: "Death", Number: 13, Arcana: domain.ArcanaMajor}, Reversed: true, PositionID: 1},
			{Card: domain.Card{ID: "ace-of-cups", Name: "Ace of Cups", Number: 1, Arcana: domain.ArcanaMinor, Suit: domain.SuitCups}, Reversed: false, PositionID: 2},
		},
		Question:       "¿Qué me espera?",
		Interpretation: "Las cartas hablan de renovación.",
		Source:         domain.SourceModel,
		CreatedAt:      createdAt,
	}
}

func TestSaveAndGetReading(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	saved := sampleReading("r-1", time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))

	require.NoError(t, s.SaveReading(ctx, saved))

	got, err := s.GetReading(ctx, "r-1")
	require.NoError(t, err)

	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, saved.SpreadID, got.SpreadID)
	assert.Equal(t, saved.Question, got.Question)
	assert.Equal(t, saved.Interpretation, got.Interpretation)
	assert.Equal(t, saved.Source, got.Source)
	assert.True(t, saved.CreatedAt.Equal(got.CreatedAt))

	require.Len(t, got.Cards, 3)
	assert.Equal(t, saved.Cards, got.Cards)
}

func TestGetReading_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetReading(context.Background(), "missing")

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListReadings_NewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.SaveReading(ctx, sampleReading("r-old", base)))
	require.NoError(t, s.SaveReading(ctx, sampleReading("r-mid", base.Add(time.Hour))))
	require.NoError(t, s.SaveReading(ctx, sampleReading("r-new", base.Add(2*time.Hour))))

	all, err := s.ListReadings(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "r-new", all[0].ID)
	assert.Equal(t, "r-mid", all[1].ID)
	assert.Equal(t, "r-old", all[2].ID)
}

func TestListReadings_Limit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.SaveReading(ctx, sampleReading("r-1", base)))
	require.NoError(t, s.SaveReading(ctx, sampleReading("r-2", base.Add(time.Hour))))

	limited, err := s.ListReadings(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "r-2", limited[0].ID)
}

func TestDeleteReading_CascadesCards(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveReading(ctx, sampleReading("r-1", time.Now().UTC())))
	require.NoError(t, s.DeleteReading(ctx, "r-1"))

	_, err := s.GetReading(ctx, "r-1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Re-saving under the same id must not hit orphaned card rows.
	require.NoError(t, s.SaveReading(ctx, sampleReading("r-1", time.Now().UTC())))
}

func TestSaveReading_DuplicateIDFails(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	r := sampleReading("r-1", time.Now().UTC())

	require.NoError(t, s.SaveReading(ctx, r))
	assert.Error(t, s.SaveReading(ctx, r))
}
