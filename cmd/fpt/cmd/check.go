package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Trigger a price check pass",
		Long: "Runs one price check pass on the server and waits for it to finish.\n" +
			"Fails with a conflict if a scheduled pass is already running.",
		Example: `  fpt check
  fpt check --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			summary, err := c.RunCheck(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(summary)
			}
			return printPassSummary(os.Stdout, summary)
		},
	}
}

func passesCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "passes",
		Short: "Show recent price check passes",
		Example: `  fpt passes
  fpt passes --limit 5 --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			runs, err := c.ListPasses(context.Background(), limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(runs)
			}
			if len(runs) == 0 {
				fmt.Println("No passes recorded.")
				return nil
			}
			return printPassRunsTable(os.Stdout, runs)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "max results")

	return cmd
}

func stateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Show alert counts and the last pass",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			s, err := c.SystemState(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(s)
			}
			return printSystemState(os.Stdout, s)
		},
	}
}
