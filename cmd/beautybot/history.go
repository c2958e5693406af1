package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nkahoots/beauty-bot/internal/repl"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent reminder activity",
		Args:  cobra.NoArgs,
		RunE:  runHistory,
	}

	cmd.Flags().IntP("limit", "l", 20, "Maximum number of events")

	rootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	if a.journal == nil {
		return fmt.Errorf("reminder history is disabled (journal.enabled is false)")
	}

	events, err := a.journal.List(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Println("No reminder history yet.")
		return nil
	}

	fmt.Println(repl.FormatHistory(events))
	return nil
}
