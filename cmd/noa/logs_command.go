package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"noa/internal/ledger"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var agent string
	var limit int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recorded agent events",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLedger(func(store *ledger.Store) error {
				events, err := store.ListAgentEvents(cmd.Context(), agent, limit)
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, events)
				}

				rows := make([][]string, 0, len(events))
				for _, event := range events {
					details := "-"
					if len(event.Details) > 0 {
						encoded, err := json.Marshal(event.Details)
						if err == nil {
							details = truncate(string(encoded), 64)
						}
					}
					rows = append(rows, []string{
						formatTimestamp(event.CreatedAt),
						event.Agent,
						event.Action,
						details,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Time", "Agent", "Action", "Details"},
					rows,
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&agent, "agent", "", "Only show events for this agent")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum events to show (0 for the default)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit events as JSON")
	return cmd
}
