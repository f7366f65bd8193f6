package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"noa/internal/ledger"
)

func newAgentsCommand(ctx *commandContext) *cobra.Command {
	agentsCmd := &cobra.Command{
		Use:   "agents",
		Short: "Inspect and run registered agents",
	}

	agentsCmd.AddCommand(newAgentsListCommand(ctx))
	agentsCmd.AddCommand(newAgentsRunCommand(ctx))

	return agentsCmd
}

func newAgentsListCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := ctx.registry(nil)
			if err != nil {
				return err
			}

			names := registry.List()
			if jsonOut {
				return writeJSON(cmd, names)
			}

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				agent, err := registry.Get(name)
				if err != nil {
					return err
				}
				rows = append(rows, []string{name, agent.Description()})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Agent", "Description"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit agent names as JSON")
	return cmd
}

func newAgentsRunCommand(ctx *commandContext) *cobra.Command {
	var paramsJSON string

	cmd := &cobra.Command{
		Use:   "run <agent>",
		Short: "Run an agent with JSON parameters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]any{}
			if trimmed := strings.TrimSpace(paramsJSON); trimmed != "" {
				if err := json.Unmarshal([]byte(trimmed), &params); err != nil {
					return fmt.Errorf("parse --params: %w", err)
				}
			}

			return ctx.withLedger(func(store *ledger.Store) error {
				registry, err := ctx.registry(store)
				if err != nil {
					return err
				}
				result, err := registry.Execute(cmd.Context(), args[0], params)
				if err != nil {
					return err
				}
				return writeJSON(cmd, result)
			})
		},
	}

	cmd.Flags().StringVar(&paramsJSON, "params", "", "Agent parameters as a JSON object")
	return cmd
}
