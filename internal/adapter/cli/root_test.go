package cli_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcano/oracle/internal/adapter/cli"
	"github.com/arcano/oracle/internal/domain"
	"github.com/arcano/oracle/internal/store"
)

// fixedRNG keeps draws deterministic in CLI tests.
type fixedRNG struct{}

func (fixedRNG) Intn(n int) int { return 0 }

// stubDecks serves a minimal deck large enough for every spread.
type stubDecks struct{}

func (stubDecks) Deck(deckID string) ([]domain.Card, error) {
	if deckID != "rider_waite" {
		return nil, fmt.Errorf("unknown deck %q", deckID)
	}
	deck := make([]domain.Card, 12)
	names := []string{"The Fool", "The Magician", "The High Priestess", "The Empress",
		"The Emperor", "The Hierophant", "The Lovers", "The Chariot",
		"Strength", "The Hermit", "Wheel of Fortune", "Justice"}
	for i := range deck {
		deck[i] = domain.Card{ID: fmt.Sprintf("c-%d", i), Name: names[i], Number: i, Arcana: domain.ArcanaMajor}
	}
	return deck, nil
}

// stubInterpreter scripts the oracle.
type stubInterpreter struct {
	text  string
	err   error
	calls int
}

func (s *stubInterpreter) GetInterpretation(context.Context, domain.Spread, []domain.DrawnCard, string, string) (string, error) {
	s.calls++
	return s.text, s.err
}

// memoryStore is an in-memory store.Store for command tests.
type memoryStore struct {
	readings map[string]domain.Reading
	saved    []string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{readings: map[string]domain.Reading{}}
}

func (m *memoryStore) SaveReading(_ context.Context, r domain.Reading) error {
	m.readings[r.ID] = r
	m.saved = append(m.saved, r.ID)
	return nil
}

func (m *memoryStore) ListReadings(_ context.Context, limit int) ([]domain.Reading, error) {
	var out []domain.Reading
	for _, id := range m.saved {
		if r, ok := m.readings[id]; ok {
			out = append(out, r)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryStore) GetReading(_ context.Context, id string) (domain.Reading, error) {
	r, ok := m.readings[id]
	if !ok {
		return domain.Reading{}, store.ErrNotFound
	}
	return r, nil
}

func (m *memoryStore) DeleteReading(_ context.Context, id string) error {
	if _, ok := m.readings[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.readings, id)
	return nil
}

func (m *memoryStore) Close() error { return nil }

func execute(t *testing.T, deps cli.Dependencies, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	deps.Args = cli.Arguments{OutWriter: out, ErrWriter: out}
	root := cli.NewRootCommand(deps)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func baseDeps() cli.Dependencies {
	return cli.Dependencies{
		Decks:   stubDecks{},
		RNG:     fixedRNG{},
		Version: "v1.2.3",
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, baseDeps(), "--version")

	assert.ErrorIs(t, err, cli.ErrVersionRequested)
	assert.Contains(t, out, "v1.2.3")
}

func TestSpreadsCommand(t *testing.T) {
	out, err := execute(t, baseDeps(), "spreads")

	require.NoError(t, err)
	assert.Contains(t, out, "daily (1 cartas)")
	assert.Contains(t, out, "three-card (3 cartas)")
	assert.Contains(t, out, "five-card (5 cartas)")
	assert.Contains(t, out, "celtic-cross (10 cartas)")
	assert.Contains(t, out, "Cruz Celta")
	assert.Contains(t, out, "¿Qué influencias del pasado me afectan?")
}

func TestReadCommand_Offline(t *testing.T) {
	interpreter := &stubInterpreter{text: "nunca usado"}
	deps := baseDeps()
	deps.Interpreter = interpreter

	out, err := execute(t, deps, "read", "--offline", "--name", "Ana")

	require.NoError(t, err)
	assert.Contains(t, out, "Tirada: Pasado, Presente, Futuro")
	assert.Contains(t, out, "noble Ana")
	assert.Contains(t, out, "El Oráculo Mayor está en meditación profunda")
	assert.Equal(t, 0, interpreter.calls, "offline must not consult the oracle")
}

func TestReadCommand_UsesInterpreter(t *testing.T) {
	interpreter := &stubInterpreter{text: "Las cartas hablan con claridad."}
	deps := baseDeps()
	deps.Interpreter = interpreter

	out, err := execute(t, deps, "read", "--spread", "daily", "--question", "¿Qué energía me acompaña?")

	require.NoError(t, err)
	assert.Contains(t, out, "Tirada: Carta del Día")
	assert.Contains(t, out, "Las cartas hablan con claridad.")
	assert.Equal(t, 1, interpreter.calls)
}

func TestReadCommand_RejectedQuestionSurfacesToUser(t *testing.T) {
	themed := domain.NewInputRejectedError("Los Arcanos detectan energías discordantes en tu pregunta.")
	deps := baseDeps()
	deps.Interpreter = &stubInterpreter{err: themed}

	_, err := execute(t, deps, "read")

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInputRejected))
}

func TestReadCommand_FallsBackOnGatewayFailure(t *testing.T) {
	deps := baseDeps()
	deps.Interpreter = &stubInterpreter{err: domain.NewTransportError("El cosmos susurra un secreto inentendible.", errors.New("boom"))}

	out, err := execute(t, deps, "read", "--name", "Luz")

	require.NoError(t, err)
	assert.Contains(t, out, "El Oráculo Mayor está en meditación profunda")
	assert.Contains(t, out, "noble Luz")
	// The themed message is surfaced before degrading, the raw cause is not.
	assert.Contains(t, out, "El cosmos susurra un secreto inentendible.")
	assert.NotContains(t, out, "boom")
}

func TestReadCommand_ShowsThemedMessageOnCompromisedResponse(t *testing.T) {
	deps := baseDeps()
	deps.Interpreter = &stubInterpreter{err: domain.NewCompromisedResponseError("El Velo de los Arcanos ha sido perturbado.")}

	out, err := execute(t, deps, "read")

	require.NoError(t, err)
	assert.Contains(t, out, "El Velo de los Arcanos ha sido perturbado.")
	assert.Contains(t, out, "El Oráculo Mayor está en meditación profunda")
}

func TestReadCommand_FallsBackWithoutInterpreter(t *testing.T) {
	out, err := execute(t, baseDeps(), "read")

	require.NoError(t, err)
	assert.Contains(t, out, "noble Buscador de la Verdad")
}

func TestReadCommand_UnknownSpread(t *testing.T) {
	_, err := execute(t, baseDeps(), "read", "--spread", "horseshoe")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "horseshoe")
}

func TestReadCommand_SavesReading(t *testing.T) {
	readings := newMemoryStore()
	deps := baseDeps()
	deps.Store = readings

	_, err := execute(t, deps, "read", "--offline", "--question", "¿Qué me espera?")

	require.NoError(t, err)
	require.Len(t, readings.saved, 1)
	saved := readings.readings[readings.saved[0]]
	assert.Equal(t, "three-card", saved.SpreadID)
	assert.Equal(t, "¿Qué me espera?", saved.Question)
	assert.Equal(t, domain.SourceFallback, saved.Source)
	assert.Len(t, saved.Cards, 3)
}

func TestHistoryCommands(t *testing.T) {
	readings := newMemoryStore()
	deps := baseDeps()
	deps.Store = readings

	_, err := execute(t, deps, "read", "--offline", "--question", "¿Qué me espera?")
	require.NoError(t, err)
	id := readings.saved[0]

	t.Run("list", func(t *testing.T) {
		out, err := execute(t, deps, "history", "list")

		require.NoError(t, err)
		assert.Contains(t, out, id)
		assert.Contains(t, out, "three-card")
	})

	t.Run("show", func(t *testing.T) {
		out, err := execute(t, deps, "history", "show", id)

		require.NoError(t, err)
		assert.Contains(t, out, "Pasado, Presente, Futuro")
		assert.Contains(t, out, "¿Qué me espera?")
		assert.Contains(t, out, "El Oráculo Mayor está en meditación profunda")
	})

	t.Run("show unknown", func(t *testing.T) {
		_, err := execute(t, deps, "history", "show", "missing")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing")
	})

	t.Run("delete", func(t *testing.T) {
		out, err := execute(t, deps, "history", "delete", id)

		require.NoError(t, err)
		assert.Contains(t, out, "eliminada")

		out, err = execute(t, deps, "history", "list")
		require.NoError(t, err)
		assert.Contains(t, out, "No hay lecturas guardadas.")
	})
}

func TestHistoryCommands_DisabledStore(t *testing.T) {
	_, err := execute(t, baseDeps(), "history", "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disabled")
}

func TestReadCommand_Export(t *testing.T) {
	exporter := &stubExporter{}
	deps := baseDeps()
	deps.Exporter = exporter
	deps.OutputDir = "readings"

	out, err := execute(t, deps, "read", "--offline", "--export")

	require.NoError(t, err)
	assert.Equal(t, 1, exporter.calls)
	assert.Equal(t, "readings", exporter.lastDir)
	assert.Contains(t, out, "Lectura exportada: readings/three-card_test.md")
}

type stubExporter struct {
	calls   int
	lastDir string
}

func (s *stubExporter) Write(dir string, spread domain.Spread, _ domain.Reading) (string, error) {
	s.calls++
	s.lastDir = dir
	return dir + "/" + spread.ID + "_test.md", nil
}
