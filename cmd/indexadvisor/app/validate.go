package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/IndexAdvisor/cmd/indexadvisor/app/ui"
	"github.com/dshills/IndexAdvisor/core"
	"github.com/dshills/IndexAdvisor/paramcheck"
)

func newValidateCmd() *cobra.Command {
	var (
		index      string
		paramsJSON string
		metricType string
		vectors    int64
		dimensions int
		memoryGB   float64
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate index parameters against hard limits and recommended bounds",
		Long: `Validate index parameters against hard limits and recommended bounds.

Checks a concrete parameter set the way the index build would, using rules
independent of the recommendation models. Workload flags are optional;
memory checks are skipped without them. Exits non-zero when errors are
found.

Examples:
  indexadvisor validate --index HNSW --params '{"M": 32, "efConstruction": 500}' \
      --vectors 1000000 --dimensions 768 --memory 64

  indexadvisor validate --index IVF_FLAT --params '{"nlist": 1024}' \
      --vectors 10000000 --dimensions 512`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var params core.ParameterSet
			if paramsJSON != "" {
				if err := json.Unmarshal([]byte(paramsJSON), &params); err != nil {
					return fmt.Errorf("invalid JSON in --params: %w", err)
				}
			}

			workload := paramcheck.Workload{
				NumVectors:     vectors,
				Dimensions:     dimensions,
				MemoryBudgetGB: memoryGB,
			}

			result := paramcheck.CheckIndexParams(core.IndexFamily(index), params, workload)
			if metricType != "" {
				result.Merge(paramcheck.CheckMetricType(core.IndexFamily(index), metricType))
			}

			ui.RenderValidation(cmd.OutOrStdout(), result)

			if result.HasErrors() {
				return fmt.Errorf("validation failed with %d error(s)", len(result.Errors))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&index, "index", "", "Index family to validate (HNSW, IVF_FLAT, IVF_PQ, ...)")
	cmd.Flags().StringVar(&paramsJSON, "params", "", `Index parameters as JSON (e.g. '{"M": 32, "efConstruction": 500}')`)
	cmd.Flags().StringVar(&metricType, "metric", "", "Distance metric to validate (L2, IP, COSINE)")
	cmd.Flags().Int64Var(&vectors, "vectors", 0, "Number of vectors in the collection")
	cmd.Flags().IntVar(&dimensions, "dimensions", 0, "Vector dimensions")
	cmd.Flags().Float64Var(&memoryGB, "memory", 0, "Available memory budget in GB")

	_ = cmd.MarkFlagRequired("index")

	return cmd
}
