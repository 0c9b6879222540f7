package core

import (
	"errors"
	"math"
	"testing"
)

func validRequirement() Requirement {
	return Requirement{
		NumVectors:           1000000,
		Dimensions:           768,
		LatencyRequirementMS: 50,
		MemoryBudgetGB:       32,
		QPSTarget:            1000,
		UseCase:              UseCaseGeneral,
		HasGPU:               false,
	}
}

func TestValidateRequirement(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Requirement)
		wantField string
	}{
		{
			name:   "valid requirement",
			mutate: func(r *Requirement) {},
		},
		{
			name:   "zero qps is allowed",
			mutate: func(r *Requirement) { r.QPSTarget = 0 },
		},
		{
			name:      "zero vectors",
			mutate:    func(r *Requirement) { r.NumVectors = 0 },
			wantField: "num_vectors",
		},
		{
			name:      "negative vectors",
			mutate:    func(r *Requirement) { r.NumVectors = -5 },
			wantField: "num_vectors",
		},
		{
			name:      "zero dimensions",
			mutate:    func(r *Requirement) { r.Dimensions = 0 },
			wantField: "dimensions",
		},
		{
			name:      "zero latency",
			mutate:    func(r *Requirement) { r.LatencyRequirementMS = 0 },
			wantField: "latency_requirement_ms",
		},
		{
			name:      "NaN latency",
			mutate:    func(r *Requirement) { r.LatencyRequirementMS = math.NaN() },
			wantField: "latency_requirement_ms",
		},
		{
			name:      "zero memory budget",
			mutate:    func(r *Requirement) { r.MemoryBudgetGB = 0 },
			wantField: "memory_budget_gb",
		},
		{
			name:      "infinite memory budget",
			mutate:    func(r *Requirement) { r.MemoryBudgetGB = math.Inf(1) },
			wantField: "memory_budget_gb",
		},
		{
			name:      "negative qps",
			mutate:    func(r *Requirement) { r.QPSTarget = -1 },
			wantField: "qps_target",
		},
		{
			name: "first failing field wins",
			mutate: func(r *Requirement) {
				r.NumVectors = 0
				r.Dimensions = -1
			},
			wantField: "num_vectors",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequirement()
			tt.mutate(&req)

			err := ValidateRequirement(req)
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("ValidateRequirement() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("ValidateRequirement() error = nil, want field %q", tt.wantField)
			}
			if !errors.Is(err, ErrInvalidRequirement) {
				t.Errorf("errors.Is(err, ErrInvalidRequirement) = false for %v", err)
			}

			var invErr *InvalidRequirementError
			if !errors.As(err, &invErr) {
				t.Fatalf("error %v is not an InvalidRequirementError", err)
			}
			if invErr.Field != tt.wantField {
				t.Errorf("offending field = %q, want %q", invErr.Field, tt.wantField)
			}
		})
	}
}

func TestIndexFamilyValid(t *testing.T) {
	for _, f := range Families() {
		if !f.Valid() {
			t.Errorf("family %s should be valid", f)
		}
	}
	if !FamilyGPUIVFPQ.Valid() {
		t.Error("GPU_IVF_PQ is a known family even though it cannot be assembled")
	}
	if IndexFamily("ANNOY").Valid() {
		t.Error("unknown family should not be valid")
	}
}

func TestUnsupportedFamilyError(t *testing.T) {
	err := &UnsupportedFamilyError{Family: FamilyGPUIVFPQ}
	if !errors.Is(err, ErrUnsupportedFamily) {
		t.Error("errors.Is(err, ErrUnsupportedFamily) = false")
	}

	var ufErr *UnsupportedFamilyError
	if !errors.As(error(err), &ufErr) {
		t.Fatal("errors.As failed for UnsupportedFamilyError")
	}
	if ufErr.Family != FamilyGPUIVFPQ {
		t.Errorf("family = %s, want %s", ufErr.Family, FamilyGPUIVFPQ)
	}
}
