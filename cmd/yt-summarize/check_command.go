package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Madmanden/yt-summarizer/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run readiness checks against the configured services",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			results := preflight.RunAll(cmd.Context(), cfg)
			stdout := cmd.OutOrStdout()
			colorize := shouldColorize(stdout)

			failed := 0
			rows := make([][]string, 0, len(results))
			for _, result := range results {
				if !result.Passed {
					failed++
				}
				rows = append(rows, []string{result.Name, passFailCell(result.Passed, colorize), result.Detail})
			}
			fmt.Fprintln(stdout, renderTable([]string{"Check", "Status", "Detail"}, rows))

			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(results))
			}
			fmt.Fprintln(stdout, "All checks passed")
			return nil
		},
	}
}
