package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"noa/internal/ledger"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect recorded pipeline runs",
	}

	runsCmd.AddCommand(newRunsListCommand(ctx))
	runsCmd.AddCommand(newRunsShowCommand(ctx))

	return runsCmd
}

func newRunsListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLedger(func(store *ledger.Store) error {
				runs, err := store.ListRuns(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, runs)
				}

				rows := make([][]string, 0, len(runs))
				for _, run := range runs {
					rows = append(rows, []string{
						strconv.FormatInt(run.ID, 10),
						string(run.Status),
						strconv.Itoa(len(run.Steps)),
						formatTimestamp(run.CreatedAt),
						truncate(run.Workspace, 48),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Status", "Steps", "Created", "Workspace"},
					rows, 0, 2,
				))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum runs to list (0 for the default)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit runs as JSON")
	return cmd
}

func newRunsShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one run in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid run id %q", args[0])
			}

			return ctx.withLedger(func(store *ledger.Store) error {
				run, err := store.GetRun(cmd.Context(), id)
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, run)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Run:       %d\n", run.ID)
				fmt.Fprintf(out, "Status:    %s\n", run.Status)
				fmt.Fprintf(out, "Created:   %s\n", formatTimestamp(run.CreatedAt))
				fmt.Fprintf(out, "Updated:   %s\n", formatTimestamp(run.UpdatedAt))
				fmt.Fprintf(out, "Workspace: %s\n", run.Workspace)
				fmt.Fprintf(out, "Steps:     %s\n", formatSteps(run.Steps))
				if run.Payload != "" {
					fmt.Fprintf(out, "Payload:   %s\n", run.Payload)
				}
				if run.ErrorMessage != "" {
					fmt.Fprintf(out, "Error:     %s\n", run.ErrorMessage)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the run as JSON")
	return cmd
}
