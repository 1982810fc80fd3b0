package cli

import (
	"bufio"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/arcano/oracle/internal/adapter/decks"
	"github.com/arcano/oracle/internal/domain"
	"github.com/arcano/oracle/internal/sanitize"
	"github.com/arcano/oracle/internal/usecase/reading"
)

type readOptions struct {
	spreadID string
	question string
	name     string
	offline  bool
	export   bool
	deckID   string
}

func readCommand(deps Dependencies) *cobra.Command {
	opts := readOptions{}

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Draw cards and consult the oracle",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead(cmd, deps, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.spreadID, "spread", "s", domain.ThreeCardSpread.ID, "Spread to use (see 'arcano spreads')")
	cmd.Flags().StringVarP(&opts.question, "question", "q", "", "Question to ask the cards")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Name of the consultant")
	cmd.Flags().BoolVar(&opts.offline, "offline", false, "Skip the oracle and use the built-in reading")
	cmd.Flags().BoolVar(&opts.export, "export", false, "Export the reading as Markdown")
	cmd.Flags().StringVar(&opts.deckID, "deck", decks.DefaultDeckID, "Deck to draw from")

	return cmd
}

func runRead(cmd *cobra.Command, deps Dependencies, opts readOptions) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	spread, ok := domain.SpreadByID(opts.spreadID)
	if !ok {
		return fmt.Errorf("unknown spread %q (see 'arcano spreads')", opts.spreadID)
	}

	deck, err := deps.Decks.Deck(opts.deckID)
	if err != nil {
		return fmt.Errorf("load deck: %w", err)
	}

	question := opts.question
	if question == "" && IsInteractive() {
		question, err = promptQuestion(cmd)
		if err != nil {
			return err
		}
	}

	cards, err := domain.DrawCards(deck, spread, deps.RNG)
	if err != nil {
		return fmt.Errorf("draw cards: %w", err)
	}

	fmt.Fprintf(out, "Tirada: %s\n\n", spread.Name)
	for _, card := range cards {
		position, _ := spread.PositionByID(card.PositionID)
		fmt.Fprintf(out, "  %s: %s\n", position.Name, domain.CardDisplayName(card.Name, card.Reversed))
	}
	fmt.Fprintln(out)

	interpretation, source, err := interpret(ctx, cmd, deps, spread, cards, question, opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, interpretation)

	record := domain.Reading{
		ID:             newReadingID(),
		SpreadID:       spread.ID,
		Cards:          cards,
		Question:       question,
		Interpretation: interpretation,
		Source:         source,
		CreatedAt:      time.Now().UTC(),
	}

	if deps.Store != nil {
		if err := deps.Store.SaveReading(ctx, record); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not save reading: %v\n", err)
		}
	}

	if opts.export && deps.Exporter != nil {
		path, err := deps.Exporter.Write(deps.OutputDir, spread, record)
		if err != nil {
			return fmt.Errorf("export reading: %w", err)
		}
		fmt.Fprintf(out, "\nLectura exportada: %s\n", path)
	}

	return nil
}

// interpret decides between the oracle and the built-in reading. A missing or
// misconfigured oracle degrades to the fallback text; a rejected question is a
// user error and is returned as-is.
func interpret(ctx context.Context, cmd *cobra.Command, deps Dependencies, spread domain.Spread, cards []domain.DrawnCard, question string, opts readOptions) (string, string, error) {
	if opts.offline || deps.Interpreter == nil {
		return reading.FallbackInterpretation(spread, cards, question, opts.name), domain.SourceFallback, nil
	}

	text, err := deps.Interpreter.GetInterpretation(ctx, spread, cards, question, opts.name)
	if err == nil {
		return text, domain.SourceModel, nil
	}
	if domain.IsKind(err, domain.KindInputRejected) {
		return "", "", err
	}
	// Gateway, validation and configuration failures all degrade to the
	// self-contained reading so the consultation still completes. The themed
	// message is shown before degrading, not swallowed.
	fmt.Fprintf(cmd.ErrOrStderr(), "%s\n\n", err)
	return reading.FallbackInterpretation(spread, cards, question, opts.name), domain.SourceFallback, nil
}

func promptQuestion(cmd *cobra.Command) (string, error) {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	for attempts := 0; attempts < 3; attempts++ {
		fmt.Fprint(out, "¿Qué deseas preguntar a las cartas? (enter para omitir): ")
		if !scanner.Scan() {
			return "", scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			return "", nil
		}
		result := sanitize.ValidateQuestion(line)
		if result.IsValid {
			return line, nil
		}
		fmt.Fprintf(out, "%s\n\n", result.Error)
	}
	return "", errors.New("too many rejected questions")
}

func newReadingID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("r-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}
