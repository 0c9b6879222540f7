package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dshills/IndexAdvisor/core"
	"github.com/dshills/IndexAdvisor/paramcheck"
)

func TestRenderRecommendation(t *testing.T) {
	rec := core.Recommendation{
		Family:            core.FamilyHNSW,
		Params:            core.ParameterSet{"M": 16, "efConstruction": 200},
		MemoryGB:          2.5,
		BuildTimeMin:      12,
		QueryLatencyP95MS: 18,
		RecallAt10:        0.97,
		Reason:            "Best for low-latency requirements with moderate dataset size",
		Confidence:        0.9,
		Alternatives: []core.Alternative{
			{Family: core.FamilyIVFFlat, MemoryGB: 1.8, QueryLatencyP95MS: 25},
			{Family: core.FamilyFlat, MemoryGB: 1.5, QueryLatencyP95MS: 40},
			{Family: core.FamilyIVFSQ8, MemoryGB: 0.9, QueryLatencyP95MS: 30},
		},
	}
	req := core.Requirement{
		NumVectors:           500000,
		Dimensions:           768,
		LatencyRequirementMS: 20,
		MemoryBudgetGB:       64,
		QPSTarget:            1000,
		UseCase:              core.UseCaseRAG,
	}

	var buf bytes.Buffer
	if err := RenderRecommendation(&buf, rec, req); err != nil {
		t.Fatalf("RenderRecommendation returned error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"RECOMMENDED INDEX: HNSW",
		"Reason: Best for low-latency requirements with moderate dataset size",
		"Confidence: 90%",
		"efConstruction",
		"200",
		"2.5 GB",
		"~12 minutes",
		"~18 ms",
		"~97%",
		"Alternatives to Consider:",
		"IVF_FLAT: 1.8 GB memory, ~25ms latency",
		"FLAT: 1.5 GB memory, ~40ms latency",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Only the first two alternatives are shown
	if strings.Contains(out, "IVF_SQ8") {
		t.Errorf("output should cap alternatives at two:\n%s", out)
	}

	// Both estimates are within budget here
	if strings.Contains(out, "Exceeds budget") || strings.Contains(out, "May exceed target") {
		t.Errorf("output should not flag estimates within budget:\n%s", out)
	}
}

func TestRenderRecommendationOverBudget(t *testing.T) {
	rec := core.Recommendation{
		Family:            core.FamilyIVFPQ,
		Params:            core.ParameterSet{"nlist": 4096, "m": 32, "nbits": 8},
		MemoryGB:          70,
		BuildTimeMin:      240,
		QueryLatencyP95MS: 30,
		RecallAt10:        0.9,
		Reason:            "Only option fitting memory constraints",
		Confidence:        0.7,
	}
	req := core.Requirement{
		NumVectors:           100000000,
		Dimensions:           768,
		LatencyRequirementMS: 20,
		MemoryBudgetGB:       64,
	}

	var buf bytes.Buffer
	if err := RenderRecommendation(&buf, rec, req); err != nil {
		t.Fatalf("RenderRecommendation returned error: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Exceeds budget") {
		t.Errorf("output should flag memory over budget:\n%s", out)
	}
	if !strings.Contains(out, "May exceed target") {
		t.Errorf("output should flag latency over target:\n%s", out)
	}
	if strings.Contains(out, "Alternatives to Consider:") {
		t.Errorf("output should omit alternatives section when there are none:\n%s", out)
	}
}

func TestRenderValidation(t *testing.T) {
	tests := []struct {
		name        string
		result      paramcheck.Result
		wantLines   []string
		rejectLines []string
	}{
		{
			name:   "clean",
			result: paramcheck.Result{},
			wantLines: []string{
				"INDEX CONFIGURATION VALIDATION RESULTS",
				"✓ Validation passed! No errors or warnings found.",
			},
			rejectLines: []string{"Errors found", "Warnings"},
		},
		{
			name: "errors and warnings",
			result: paramcheck.Result{
				Errors:   []string{"M=100 exceeds maximum 64", "efConstruction=1000 exceeds maximum 500"},
				Warnings: []string{"query latency may be high"},
			},
			wantLines: []string{
				"❌ Errors found (2):",
				"1. M=100 exceeds maximum 64",
				"2. efConstruction=1000 exceeds maximum 500",
				"⚠️  Warnings (1):",
				"1. query latency may be high",
				"❌ Recommendation: Fix errors before deployment",
			},
		},
		{
			name: "warnings only",
			result: paramcheck.Result{
				Warnings: []string{"M=16 with efConstruction=100 may give low recall"},
			},
			wantLines: []string{
				"⚠️  Warnings (1):",
				"⚠️  Recommendation: Review warnings and adjust if needed",
			},
			rejectLines: []string{"Errors found", "Fix errors before deployment"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			RenderValidation(&buf, tt.result)
			out := buf.String()

			for _, want := range tt.wantLines {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, reject := range tt.rejectLines {
				if strings.Contains(out, reject) {
					t.Errorf("output should not contain %q:\n%s", reject, out)
				}
			}
		})
	}
}
