package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"noa/internal/generator"
	"noa/internal/ledger"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var endpoints []string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "generate <service-name>",
		Short: "Scaffold a new microservice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLedger(func(store *ledger.Store) error {
				registry, err := ctx.registry(store)
				if err != nil {
					return err
				}

				params := map[string]any{"service_name": args[0]}
				if len(endpoints) > 0 {
					params["endpoints"] = endpoints
				}

				result, err := registry.Execute(cmd.Context(), generator.AgentName, params)
				if err != nil {
					return err
				}

				if jsonOut {
					return writeJSON(cmd, result)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Generated service %s\n\n", args[0])
				fmt.Fprintln(out, "Files created:")
				for _, file := range result.Files {
					fmt.Fprintf(out, "  %s\n", file)
				}
				if len(result.NextSteps) > 0 {
					fmt.Fprintln(out, "\nNext steps:")
					for _, step := range result.NextSteps {
						fmt.Fprintf(out, "  %s\n", step)
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringArrayVar(&endpoints, "endpoint", nil, "Endpoint path to expose (repeatable; defaults from config)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the generation result as JSON")
	return cmd
}
