package advisor

import (
	"math"

	"github.com/dshills/IndexAdvisor/core"
)

const bytesPerGiB = 1 << 30

// EstimateHNSWMemoryGB estimates the resident size of an HNSW graph over
// n vectors of the given dimensionality with graph degree m. The decision
// rules and the HNSW sizing path share this model.
func EstimateHNSWMemoryGB(n int64, dims, m int) float64 {
	bytesPerVector := float64(dims)*4 + float64(m)*2*1.2
	return float64(n) * bytesPerVector / bytesPerGiB
}

// EstimateMemoryGB estimates resident memory in GB for family sized by
// params
func EstimateMemoryGB(family core.IndexFamily, req core.Requirement, params core.ParameterSet) (float64, error) {
	base := float64(req.NumVectors) * float64(req.Dimensions) * 4 / bytesPerGiB

	switch family {
	case core.FamilyFlat:
		return base, nil
	case core.FamilyHNSW:
		m := int(params["M"])
		if m == 0 {
			m = DefaultGraphDegree(req.NumVectors)
		}
		return EstimateHNSWMemoryGB(req.NumVectors, req.Dimensions, m), nil
	case core.FamilyIVFFlat:
		return base * 1.1, nil // +10% clustering overhead
	case core.FamilyIVFSQ8:
		return base * 0.6, nil // scalar quantized
	case core.FamilyIVFPQ:
		return base * 0.25, nil // compressed to ~1/4
	case core.FamilyDiskANN:
		// resident graph only, ~100 bytes per vector, raw data on disk
		return float64(req.NumVectors) * 100 / bytesPerGiB, nil
	case core.FamilyGPUIVFFlat:
		return base * 1.2, nil // host copy plus device buffers
	default:
		return 0, &core.UnsupportedFamilyError{Family: family}
	}
}

// EstimateBuildTimeMin estimates index build wall time in minutes
func EstimateBuildTimeMin(family core.IndexFamily, req core.Requirement, params core.ParameterSet) (float64, error) {
	n := float64(req.NumVectors)
	base := n / 100_000

	switch family {
	case core.FamilyFlat:
		return 0.1, nil // nothing to build beyond loading
	case core.FamilyHNSW:
		m := params["M"]
		if m == 0 {
			m = float64(DefaultGraphDegree(req.NumVectors))
		}
		return base * 3 * (m / 16), nil
	case core.FamilyIVFFlat:
		return base * 2, nil
	case core.FamilyIVFSQ8:
		return n / 90_000 * 2.5, nil
	case core.FamilyIVFPQ:
		return base * 3, nil
	case core.FamilyDiskANN:
		return n / 50_000 * 5, nil
	case core.FamilyGPUIVFFlat:
		return n / 500_000, nil
	default:
		return 0, &core.UnsupportedFamilyError{Family: family}
	}
}

// EstimateQueryLatencyP95MS estimates p95 query latency in milliseconds
func EstimateQueryLatencyP95MS(family core.IndexFamily, req core.Requirement, params core.ParameterSet) (float64, error) {
	n := float64(req.NumVectors)

	switch family {
	case core.FamilyFlat:
		return 5, nil
	case core.FamilyHNSW:
		ef := params["ef"]
		if ef == 0 {
			ef = 64
		}
		return 10 + math.Log10(n)*5 + (ef/64)*10, nil
	case core.FamilyIVFFlat:
		nprobe := params["nprobe"]
		if nprobe == 0 {
			nprobe = 32
		}
		return 15 + (nprobe/32)*20, nil
	case core.FamilyIVFSQ8:
		return 12 + (n/1_000_000)*5.5, nil
	case core.FamilyIVFPQ:
		return 15 + (n/1_000_000)*6, nil
	case core.FamilyDiskANN:
		// conservative: half again over the requested bound
		return req.LatencyRequirementMS * 1.5, nil
	case core.FamilyGPUIVFFlat:
		return 5, nil
	default:
		return 0, &core.UnsupportedFamilyError{Family: family}
	}
}

// recallByFamily holds the recall@10 each family typically reaches with
// the derived parameters
var recallByFamily = map[core.IndexFamily]float64{
	core.FamilyFlat:       1.0,
	core.FamilyHNSW:       0.95,
	core.FamilyIVFFlat:    0.98,
	core.FamilyIVFSQ8:     0.95,
	core.FamilyIVFPQ:      0.90,
	core.FamilyDiskANN:    0.92,
	core.FamilyGPUIVFFlat: 0.98,
}

// RecallAt10 returns the expected recall@10 for family
func RecallAt10(family core.IndexFamily) (float64, error) {
	r, ok := recallByFamily[family]
	if !ok {
		return 0, &core.UnsupportedFamilyError{Family: family}
	}
	return r, nil
}

// confidenceByFamily holds how firmly each family is recommended
var confidenceByFamily = map[core.IndexFamily]float64{
	core.FamilyFlat:       0.99,
	core.FamilyHNSW:       0.92,
	core.FamilyIVFFlat:    0.88,
	core.FamilyIVFSQ8:     0.87,
	core.FamilyIVFPQ:      0.85,
	core.FamilyDiskANN:    0.90,
	core.FamilyGPUIVFFlat: 0.91,
}
