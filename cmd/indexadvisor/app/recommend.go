package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/IndexAdvisor/advisor"
	"github.com/dshills/IndexAdvisor/cmd/indexadvisor/app/ui"
	"github.com/dshills/IndexAdvisor/core"
)

func newRecommendCmd() *cobra.Command {
	var (
		vectors    int64
		dimensions int
		latencyMS  float64
		memoryGB   float64
		qps        int
		useCase    string
		hasGPU     bool
		output     string
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend an index configuration for a workload",
		Long: `Recommend an index configuration for a workload.

Picks an index family for the given requirements, sizes its parameters and
prints the expected memory, build time, latency and recall, along with
alternative families worth considering.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output != "table" && output != "json" {
				return fmt.Errorf("unknown output format %q, expected table or json", output)
			}

			req := core.Requirement{
				NumVectors:           vectors,
				Dimensions:           dimensions,
				LatencyRequirementMS: latencyMS,
				MemoryBudgetGB:       memoryGB,
				QPSTarget:            qps,
				UseCase:              core.UseCase(useCase),
				HasGPU:               hasGPU,
			}

			rec, err := advisor.New().Recommend(req)
			if err != nil {
				return err
			}

			if output == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rec)
			}

			return ui.RenderRecommendation(cmd.OutOrStdout(), rec, req)
		},
	}

	cmd.Flags().Int64Var(&vectors, "vectors", 0, "Number of vectors to store")
	cmd.Flags().IntVar(&dimensions, "dimensions", 0, "Vector dimensions")
	cmd.Flags().Float64Var(&latencyMS, "latency", 50, "Latency requirement in milliseconds (p95)")
	cmd.Flags().Float64Var(&memoryGB, "memory", 32, "Memory budget per search node in GB")
	cmd.Flags().IntVar(&qps, "qps", 1000, "Expected queries per second")
	cmd.Flags().StringVar(&useCase, "use-case", string(core.UseCaseGeneral), "Primary use case label")
	cmd.Flags().BoolVar(&hasGPU, "gpu", false, "GPUs are available for indexing")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table or json")

	_ = cmd.MarkFlagRequired("vectors")
	_ = cmd.MarkFlagRequired("dimensions")

	return cmd
}
