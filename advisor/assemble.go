package advisor

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/dshills/IndexAdvisor/core"
)

// diskANNAlternativeLatencyMS sizes DiskANN when offered as a runner-up,
// where the caller's latency bound does not apply
const diskANNAlternativeLatencyMS = 100

// pqFallbackConfidence replaces the IVF_PQ confidence when no standard
// subvector count divides the dimensionality
const pqFallbackConfidence = 0.70

// alternativesByFamily lists the runner-up families surfaced alongside a
// recommendation. Families not listed surface none.
var alternativesByFamily = map[core.IndexFamily][]core.IndexFamily{
	core.FamilyHNSW:    {core.FamilyIVFFlat, core.FamilyDiskANN},
	core.FamilyIVFFlat: {core.FamilyHNSW, core.FamilyIVFSQ8},
	core.FamilyIVFPQ:   {core.FamilyIVFSQ8, core.FamilyDiskANN},
}

// Assemble sizes family for req and packages parameters, estimates, reason
// and runner-up alternatives into a recommendation. GPU_IVF_PQ is a known
// family no sizing exists for, so it fails with UnsupportedFamilyError.
func (a *Advisor) Assemble(family core.IndexFamily, req core.Requirement) (core.Recommendation, error) {
	if err := core.ValidateRequirement(req); err != nil {
		return core.Recommendation{}, err
	}

	sized, err := sizeFamily(family, req)
	if err != nil {
		return core.Recommendation{}, err
	}

	rec := core.Recommendation{
		Family:            sized.Family,
		Params:            sized.Params,
		MemoryGB:          sized.MemoryGB,
		BuildTimeMin:      sized.BuildTimeMin,
		QueryLatencyP95MS: sized.QueryLatencyP95MS,
		RecallAt10:        sized.RecallAt10,
		Reason:            sized.Reason,
		Confidence:        sized.Confidence,
	}

	for _, altFamily := range alternativesByFamily[family] {
		altReq := req
		if altFamily == core.FamilyDiskANN {
			altReq.LatencyRequirementMS = diskANNAlternativeLatencyMS
		}
		alt, err := sizeFamily(altFamily, altReq)
		if err != nil {
			return core.Recommendation{}, err
		}
		rec.Alternatives = append(rec.Alternatives, alt)
	}

	return rec, nil
}

// sizeFamily derives parameters and estimates for a single family. It
// never descends into alternatives.
func sizeFamily(family core.IndexFamily, req core.Requirement) (core.Alternative, error) {
	params, err := CalculateParams(family, req)
	if err != nil {
		return core.Alternative{}, err
	}

	memGB, err := EstimateMemoryGB(family, req, params)
	if err != nil {
		return core.Alternative{}, err
	}
	buildMin, err := EstimateBuildTimeMin(family, req, params)
	if err != nil {
		return core.Alternative{}, err
	}
	latencyMS, err := EstimateQueryLatencyP95MS(family, req, params)
	if err != nil {
		return core.Alternative{}, err
	}
	recall, err := RecallAt10(family)
	if err != nil {
		return core.Alternative{}, err
	}

	return core.Alternative{
		Family:            family,
		Params:            params,
		MemoryGB:          memGB,
		BuildTimeMin:      buildMin,
		QueryLatencyP95MS: latencyMS,
		RecallAt10:        recall,
		Reason:            reasonFor(family, req, memGB),
		Confidence:        confidenceFor(family, req),
	}, nil
}

// reasonFor explains why family fits req. FLAT and DiskANN interpolate the
// vector count, IVF_PQ its own memory estimate.
func reasonFor(family core.IndexFamily, req core.Requirement, memoryGB float64) string {
	switch family {
	case core.FamilyFlat:
		return fmt.Sprintf("Small dataset (%s vectors) - brute force optimal",
			humanize.Comma(req.NumVectors))
	case core.FamilyHNSW:
		return "Low latency requirement (<30ms) with sufficient memory"
	case core.FamilyIVFFlat:
		return "Balanced performance and memory usage"
	case core.FamilyIVFSQ8:
		return "Good balance of memory and accuracy"
	case core.FamilyIVFPQ:
		reason := fmt.Sprintf("Memory budget (%.1fGB) requires compression", memoryGB)
		if m, ok := pqSubvectors(req.Dimensions); !ok {
			reason += fmt.Sprintf("; no standard subvector count divides %d dimensions, falling back to m=%d",
				req.Dimensions, m)
		}
		return reason
	case core.FamilyDiskANN:
		return fmt.Sprintf("Billion-scale dataset (%s vectors)",
			humanize.Comma(req.NumVectors))
	case core.FamilyGPUIVFFlat:
		return "High QPS requirement with GPU available"
	}
	return ""
}

// confidenceFor is the per-family confidence, lowered when IVF_PQ had to
// fall back to a subvector count that does not divide the dimensionality
func confidenceFor(family core.IndexFamily, req core.Requirement) float64 {
	if family == core.FamilyIVFPQ {
		if _, ok := pqSubvectors(req.Dimensions); !ok {
			return pqFallbackConfidence
		}
	}
	return confidenceByFamily[family]
}
