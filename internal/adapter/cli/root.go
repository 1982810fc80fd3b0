// Package cli wires the terminal commands around the interpretation
// pipeline. The CLI is the caller in the pipeline's sense: it owns the
// policy of when to fall back to the offline reading.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcano/oracle/internal/domain"
	"github.com/arcano/oracle/internal/store"
)

// ErrVersionRequested indicates the user requested the CLI version and no
// further work should be done.
var ErrVersionRequested = errors.New("version requested")

// Interpreter is the dependency required to consult the oracle.
type Interpreter interface {
	GetInterpretation(ctx context.Context, spread domain.Spread, cards []domain.DrawnCard, question, name string) (string, error)
}

// DeckSource supplies card catalogs.
type DeckSource interface {
	Deck(deckID string) ([]domain.Card, error)
}

// Exporter writes a completed reading to a file and returns its path.
type Exporter interface {
	Write(dir string, spread domain.Spread, reading domain.Reading) (string, error)
}

// Arguments encapsulates IO writers injected from the host process.
type Arguments struct {
	OutWriter io.Writer
	ErrWriter io.Writer
}

// Dependencies captures the collaborators for the CLI.
type Dependencies struct {
	Interpreter Interpreter
	Decks       DeckSource
	RNG         domain.RNG
	Store       store.Store // nil disables history
	Exporter    Exporter    // nil disables export
	OutputDir   string
	Args        Arguments
	Version     string
}

// NewRootCommand constructs the root Cobra command.
func NewRootCommand(deps Dependencies) *cobra.Command {
	versionString := deps.Version
	if versionString == "" {
		versionString = "v0.0.0"
	}

	root := &cobra.Command{
		Use:   "arcano",
		Short: "Tarot oracle with a prompt-injection-hardened interpretation pipeline",
	}
	root.SilenceUsage = true
	root.SilenceErrors = true

	outWriter := deps.Args.OutWriter
	if outWriter == nil {
		outWriter = os.Stdout
	}
	errWriter := deps.Args.ErrWriter
	if errWriter == nil {
		errWriter = os.Stderr
	}
	root.SetOut(outWriter)
	root.SetErr(errWriter)

	root.AddCommand(readCommand(deps))
	root.AddCommand(spreadsCommand())
	root.AddCommand(historyCommand(deps.Store))

	var showVersion bool
	root.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version and exit")
	versionHandler := func(cmd *cobra.Command, args []string) error {
		if showVersion {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), versionString)
			return ErrVersionRequested
		}
		return nil
	}
	root.PersistentPreRunE = versionHandler
	root.RunE = func(cmd *cobra.Command, args []string) error {
		if err := versionHandler(cmd, args); err != nil {
			return err
		}
		return cmd.Help()
	}

	return root
}

func spreadsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "spreads",
		Short: "List available spreads",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, spread := range domain.AllSpreads {
				fmt.Fprintf(out, "%s (%d cartas)\n", spread.ID, len(spread.Positions))
				fmt.Fprintf(out, "  %s — %s\n", spread.Name, spread.Description)
				for _, position := range spread.Positions {
					fmt.Fprintf(out, "    %d. %s: %s\n", position.ID+1, position.Name, position.Question)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}
