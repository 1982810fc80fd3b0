package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcano/oracle/internal/domain"
	"github.com/arcano/oracle/internal/store"
)

func historyCommand(readings store.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage saved readings",
	}
	cmd.AddCommand(historyListCommand(readings))
	cmd.AddCommand(historyShowCommand(readings))
	cmd.AddCommand(historyDeleteCommand(readings))
	return cmd
}

func requireStore(readings store.Store) error {
	if readings == nil {
		return errors.New("history is disabled (store.enabled is false)")
	}
	return nil
}

func historyListCommand(readings store.Store) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved readings, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireStore(readings); err != nil {
				return err
			}
			saved, err := readings.ListReadings(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list readings: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(saved) == 0 {
				fmt.Fprintln(out, "No hay lecturas guardadas.")
				return nil
			}
			for _, r := range saved {
				line := fmt.Sprintf("%s  %s  %s", r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.SpreadID)
				if r.Question != "" {
					line += "  " + r.Question
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum readings to list (0 for all)")
	return cmd
}

func historyShowCommand(readings store.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "show <reading-id>",
		Short: "Show a saved reading",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireStore(readings); err != nil {
				return err
			}
			saved, err := readings.GetReading(cmd.Context(), args[0])
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no reading with id %q", args[0])
			}
			if err != nil {
				return fmt.Errorf("load reading: %w", err)
			}

			out := cmd.OutOrStdout()
			spread, ok := domain.SpreadByID(saved.SpreadID)
			if ok {
				fmt.Fprintf(out, "Tirada: %s (%s)\n", spread.Name, saved.CreatedAt.Format("2006-01-02 15:04"))
			} else {
				fmt.Fprintf(out, "Tirada: %s (%s)\n", saved.SpreadID, saved.CreatedAt.Format("2006-01-02 15:04"))
			}
			if saved.Question != "" {
				fmt.Fprintf(out, "Pregunta: %s\n", saved.Question)
			}
			fmt.Fprintln(out)
			for _, card := range saved.Cards {
				label := fmt.Sprintf("Posición %d", card.PositionID+1)
				if ok {
					if position, found := spread.PositionByID(card.PositionID); found {
						label = position.Name
					}
				}
				fmt.Fprintf(out, "  %s: %s\n", label, domain.CardDisplayName(card.Name, card.Reversed))
			}
			fmt.Fprintf(out, "\n%s\n", saved.Interpretation)
			return nil
		},
	}
}

func historyDeleteCommand(readings store.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <reading-id>",
		Short: "Delete a saved reading",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireStore(readings); err != nil {
				return err
			}
			if err := readings.DeleteReading(cmd.Context(), args[0]); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("no reading with id %q", args[0])
				}
				return fmt.Errorf("delete reading: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Lectura %s eliminada.\n", args[0])
			return nil
		},
	}
}
