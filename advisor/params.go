package advisor

import (
	"math"

	"github.com/dshills/IndexAdvisor/core"
)

// Parameter heuristics
const (
	efConstructionFactor = 15
	efSearchFactor       = 4
	minNlist             = 128
	maxNlist             = 16384
	ivfNprobeFloor       = 16
	ivfNprobeFraction    = 0.1
	pqNprobeFloor        = 32
	pqNprobeFraction     = 0.15
	pqNbits              = 8
	pqFallbackSubvectors = 8
	gpuNprobe            = 64
)

// pqSubvectorCandidates are tried largest first; the chosen count must
// divide the vector dimensionality
var pqSubvectorCandidates = [...]int{32, 16, 8, 4}

// DefaultGraphDegree returns the HNSW graph degree used for a dataset of
// n vectors. Larger datasets get denser graphs.
func DefaultGraphDegree(n int64) int {
	switch {
	case n < 100_000:
		return 8
	case n < 1_000_000:
		return 16
	case n < 10_000_000:
		return 24
	default:
		return 32
	}
}

// CalculateParams derives the tuning parameters for family sized to req.
// The requirement must already be validated.
func CalculateParams(family core.IndexFamily, req core.Requirement) (core.ParameterSet, error) {
	switch family {
	case core.FamilyFlat:
		// brute force has nothing to tune
		return core.ParameterSet{}, nil

	case core.FamilyHNSW:
		m := DefaultGraphDegree(req.NumVectors)
		return core.ParameterSet{
			"M":              float64(m),
			"efConstruction": float64(m * efConstructionFactor),
			"ef":             float64(m * efSearchFactor),
		}, nil

	case core.FamilyIVFFlat, core.FamilyIVFSQ8:
		nlist := clampedNlist(req.NumVectors)
		return core.ParameterSet{
			"nlist":  nlist,
			"nprobe": math.Max(ivfNprobeFloor, math.Round(nlist*ivfNprobeFraction)),
		}, nil

	case core.FamilyIVFPQ:
		nlist := clampedNlist(req.NumVectors)
		m, _ := pqSubvectors(req.Dimensions)
		return core.ParameterSet{
			"nlist":  nlist,
			"m":      float64(m),
			"nbits":  pqNbits,
			"nprobe": math.Max(pqNprobeFloor, math.Round(nlist*pqNprobeFraction)),
		}, nil

	case core.FamilyDiskANN:
		return core.ParameterSet{
			"search_list_size": math.Round(req.LatencyRequirementMS / 2),
		}, nil

	case core.FamilyGPUIVFFlat:
		return core.ParameterSet{
			"nlist":  math.Round(math.Sqrt(float64(req.NumVectors))),
			"nprobe": gpuNprobe,
		}, nil

	default:
		return nil, &core.UnsupportedFamilyError{Family: family}
	}
}

// clampedNlist is sqrt(N) held inside the supported cluster count range
func clampedNlist(n int64) float64 {
	nlist := math.Round(math.Sqrt(float64(n)))
	return math.Min(math.Max(nlist, minNlist), maxNlist)
}

// pqSubvectors picks the PQ segment count for dims. ok is false when no
// candidate divides dims and the fallback count is returned instead.
func pqSubvectors(dims int) (m int, ok bool) {
	for _, c := range pqSubvectorCandidates {
		if dims%c == 0 {
			return c, true
		}
	}
	return pqFallbackSubvectors, false
}
