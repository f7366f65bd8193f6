package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"noa/internal/logging"
	"noa/internal/pipeline"
	"noa/internal/preflight"
)

func newHealthCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check the environment and pipeline stages",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			checks := preflight.RunAll(cfg)

			runner, err := pipeline.NewDefault(logging.NewNop())
			if err != nil {
				return err
			}
			stages := runner.Health(cmd.Context())

			if jsonOut {
				return writeJSON(cmd, map[string]any{
					"environment": checks,
					"stages":      stages,
				})
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			rows := make([][]string, 0, len(checks))
			for _, check := range checks {
				rows = append(rows, []string{check.Name, statusLabel(check.Passed, colorize), check.Detail})
			}
			fmt.Fprintln(out, renderTable([]string{"Check", "Status", "Detail"}, rows))

			stageRows := make([][]string, 0, len(stages))
			allReady := true
			for _, health := range stages {
				if !health.Ready {
					allReady = false
				}
				stageRows = append(stageRows, []string{health.Name, statusLabel(health.Ready, colorize), health.Detail})
			}
			fmt.Fprintln(out, renderTable([]string{"Stage", "Status", "Detail"}, stageRows))

			if !preflight.AllPassed(checks) || !allReady {
				return errors.New("health checks failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit health results as JSON")
	return cmd
}
