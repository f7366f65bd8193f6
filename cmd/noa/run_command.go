package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"noa/internal/ledger"
	"noa/internal/pipeline"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var workspaceDir string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "run [payload]",
		Short: "Run the stage pipeline over a payload",
		Long: "Run the full stage pipeline over the given payload. A JSON payload " +
			"is decoded before processing; anything else is passed through as a string.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			runner, err := pipeline.NewDefault(logger)
			if err != nil {
				return err
			}

			rawPayload := ""
			if len(args) > 0 {
				rawPayload = args[0]
			}
			payload := parsePayload(rawPayload)

			baseDir := strings.TrimSpace(workspaceDir)
			if baseDir == "" {
				baseDir = cfg.Paths.WorkspaceDir
			}

			return ctx.withLedger(func(store *ledger.Store) error {
				run, err := store.BeginRun(cmd.Context(), rawPayload)
				if err != nil {
					return err
				}

				result, runErr := runner.Run(cmd.Context(), payload, baseDir)

				workspace := ""
				var steps []string
				if result != nil {
					workspace = result.Workspace
					steps = result.Steps
				}

				if runErr != nil {
					if err := store.FailRun(cmd.Context(), run.ID, workspace, steps, runErr.Error()); err != nil {
						logger.Warn("failed to record run failure", "error", err)
					}
					return fmt.Errorf("run %d failed: %w", run.ID, runErr)
				}

				if err := store.CompleteRun(cmd.Context(), run.ID, workspace, steps); err != nil {
					return err
				}

				if jsonOut {
					return writeJSON(cmd, map[string]any{
						"run_id":    run.ID,
						"workspace": workspace,
						"steps":     steps,
					})
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Run %d completed\n", run.ID)
				fmt.Fprintf(out, "Workspace: %s\n", workspace)
				fmt.Fprintf(out, "Steps:     %s\n", formatSteps(steps))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&workspaceDir, "workspace-dir", "", "Override the workspace base directory")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the run result as JSON")
	return cmd
}
