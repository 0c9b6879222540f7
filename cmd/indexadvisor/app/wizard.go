package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/IndexAdvisor/advisor"
	"github.com/dshills/IndexAdvisor/cmd/indexadvisor/app/ui"
)

func newWizardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Interactively gather requirements and recommend an index",
		Long: `Interactively gather requirements and recommend an index.

Walks through the workload questions one at a time (vector count,
dimensions, latency target, memory budget, QPS, use case, GPU
availability), then prints the recommendation.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Check if terminal is interactive (not piped)
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("interactive mode requires a terminal; stdin is not a TTY")
			}

			req, confirmed, err := ui.RunWizard()
			if err != nil {
				return fmt.Errorf("wizard error: %w", err)
			}

			if !confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), "Wizard cancelled")
				return nil
			}

			rec, err := advisor.New().Recommend(req)
			if err != nil {
				return err
			}

			return ui.RenderRecommendation(cmd.OutOrStdout(), rec, req)
		},
	}
}
