package core

import "math"

// ValidateRequirement checks that a requirement is usable for sizing.
// Checks run in field order and the first failure wins.
func ValidateRequirement(req Requirement) error {
	if req.NumVectors <= 0 {
		return &InvalidRequirementError{Field: "num_vectors", Reason: "must be positive"}
	}

	if req.Dimensions <= 0 {
		return &InvalidRequirementError{Field: "dimensions", Reason: "must be positive"}
	}

	if !isPositiveFinite(req.LatencyRequirementMS) {
		return &InvalidRequirementError{Field: "latency_requirement_ms", Reason: "must be positive"}
	}

	if !isPositiveFinite(req.MemoryBudgetGB) {
		return &InvalidRequirementError{Field: "memory_budget_gb", Reason: "must be positive"}
	}

	if req.QPSTarget < 0 {
		return &InvalidRequirementError{Field: "qps_target", Reason: "cannot be negative"}
	}

	return nil
}

// isPositiveFinite rejects NaN and infinities as well as non-positive values
func isPositiveFinite(f float64) bool {
	return f > 0 && !math.IsNaN(f) && !math.IsInf(f, 0)
}
