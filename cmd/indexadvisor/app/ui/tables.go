package ui

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/dshills/IndexAdvisor/core"
	"github.com/dshills/IndexAdvisor/paramcheck"
)

// RenderRecommendation writes a human readable recommendation report to w.
// The requirement is needed to flag estimates that miss its targets.
func RenderRecommendation(w io.Writer, rec core.Recommendation, req core.Requirement) error {
	banner := strings.Repeat("=", 70)

	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "  RECOMMENDED INDEX: %s\n", rec.Family)
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "\nReason: %s\n", rec.Reason)
	fmt.Fprintf(w, "Confidence: %.0f%%\n\n", rec.Confidence*100)

	fmt.Fprintln(w, "Parameters:")
	if err := renderParamsTable(w, rec.Params); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nExpected Performance:")
	if err := renderPerformanceTable(w, rec, req); err != nil {
		return err
	}

	if len(rec.Alternatives) > 0 {
		fmt.Fprintln(w, "\nAlternatives to Consider:")
		alternatives := rec.Alternatives
		if len(alternatives) > 2 {
			alternatives = alternatives[:2]
		}
		for _, alt := range alternatives {
			fmt.Fprintf(w, "  • %s: %.1f GB memory, ~%.0fms latency\n",
				alt.Family, alt.MemoryGB, alt.QueryLatencyP95MS)
		}
	}

	fmt.Fprintln(w)
	return nil
}

func renderParamsTable(w io.Writer, params core.ParameterSet) error {
	table := tablewriter.NewWriter(w)
	table.Options(
		tablewriter.WithHeader([]string{"Parameter", "Value"}),
		tablewriter.WithRendition(
			tw.Rendition{
				Borders: tw.Border{
					Left:   tw.State(1),
					Top:    tw.State(1),
					Right:  tw.State(1),
					Bottom: tw.State(1),
				},
			},
		),
		tablewriter.WithAlignment(tw.MakeAlign(2, tw.AlignLeft)),
	)

	// Sort for stable output
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := strconv.FormatFloat(params[key], 'f', -1, 64)
		if err := table.Append([]string{key, value}); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

func renderPerformanceTable(w io.Writer, rec core.Recommendation, req core.Requirement) error {
	table := tablewriter.NewWriter(w)
	table.Options(
		tablewriter.WithHeader([]string{"Metric", "Value", "Status"}),
		tablewriter.WithRendition(
			tw.Rendition{
				Borders: tw.Border{
					Left:   tw.State(1),
					Top:    tw.State(1),
					Right:  tw.State(1),
					Bottom: tw.State(1),
				},
			},
		),
		tablewriter.WithAlignment(tw.MakeAlign(3, tw.AlignLeft)),
	)

	memoryStatus := "✓"
	if rec.MemoryGB >= req.MemoryBudgetGB {
		memoryStatus = "⚠️ Exceeds budget"
	}

	latencyStatus := "✓"
	if rec.QueryLatencyP95MS >= req.LatencyRequirementMS*1.2 {
		latencyStatus = "⚠️ May exceed target"
	}

	rows := [][]string{
		{"Memory", fmt.Sprintf("%.1f GB", rec.MemoryGB), memoryStatus},
		{"Build Time", fmt.Sprintf("~%.0f minutes", rec.BuildTimeMin), ""},
		{"Query Latency (p95)", fmt.Sprintf("~%.0f ms", rec.QueryLatencyP95MS), latencyStatus},
		{"Recall@10", fmt.Sprintf("~%.0f%%", rec.RecallAt10*100), ""},
	}

	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

// RenderValidation writes a human readable validation report to w.
func RenderValidation(w io.Writer, result paramcheck.Result) {
	banner := strings.Repeat("=", 60)

	fmt.Fprintln(w, "\n"+banner)
	fmt.Fprintln(w, "  INDEX CONFIGURATION VALIDATION RESULTS")
	fmt.Fprintln(w, banner+"\n")

	if !result.HasErrors() && !result.HasWarnings() {
		fmt.Fprintln(w, "✓ Validation passed! No errors or warnings found.")
		fmt.Fprintln(w)
		return
	}

	if result.HasErrors() {
		fmt.Fprintf(w, "❌ Errors found (%d):\n\n", len(result.Errors))
		for i, msg := range result.Errors {
			fmt.Fprintf(w, "  %d. %s\n", i+1, msg)
		}
		fmt.Fprintln(w)
	}

	if result.HasWarnings() {
		fmt.Fprintf(w, "⚠️  Warnings (%d):\n\n", len(result.Warnings))
		for i, msg := range result.Warnings {
			fmt.Fprintf(w, "  %d. %s\n", i+1, msg)
		}
		fmt.Fprintln(w)
	}

	if result.HasErrors() {
		fmt.Fprintln(w, "❌ Recommendation: Fix errors before deployment")
	} else {
		fmt.Fprintln(w, "⚠️  Recommendation: Review warnings and adjust if needed")
	}
	fmt.Fprintln(w)
}
