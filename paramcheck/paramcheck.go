package paramcheck

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/dshills/IndexAdvisor/core"
)

// Hard limits enforced at index build time, plus recommended operating
// bounds. These are deliberately independent of the advisor's own sizing
// models.
const (
	HNSWMinM              = 1
	HNSWMaxM              = 2048
	HNSWRecommendedMaxM   = 64
	HNSWMinEfConstruction = 1
	HNSWMaxEfConstruction = 2147483647

	IVFMinNlist = 1
	IVFMaxNlist = 65536
)

// Defaults assumed when a parameter is absent
const (
	defaultM              = 16
	defaultEfConstruction = 200
	defaultNlist          = 1024
	defaultNbits          = 8
)

const (
	floatVectorBytesPerDim = 4
	hnswOverheadMultiplier = 1.2
	bytesPerGiB            = 1 << 30
)

// hnswMetricTypes are the distance metrics the HNSW engine accepts
var hnswMetricTypes = []string{"L2", "IP", "COSINE"}

// Workload supplies optional deployment context. Zero-valued fields are
// treated as unknown and the checks that need them are skipped.
type Workload struct {
	NumVectors     int64   `json:"num_vectors,omitempty"`
	Dimensions     int     `json:"dimensions,omitempty"`
	MemoryBudgetGB float64 `json:"memory_budget_gb,omitempty"`
}

// CheckIndexParams validates concrete index parameters against hard limits
// and recommended bounds. Families without checks yield a warning rather
// than an error.
func CheckIndexParams(family core.IndexFamily, params core.ParameterSet, w Workload) Result {
	var result Result

	switch family {
	case core.FamilyHNSW:
		result.Merge(checkHNSW(params, w))
	case core.FamilyIVFFlat, core.FamilyIVFSQ8, core.FamilyIVFPQ:
		result.Merge(checkIVF(family, params, w))
	case core.FamilyFlat:
		result.Merge(checkFlat(w))
	default:
		result.AddWarning(fmt.Sprintf("index family %q validation not implemented yet", family))
	}

	return result
}

// CheckMetricType validates a distance metric against the index family.
// Metric names are strings so they travel outside the numeric ParameterSet.
func CheckMetricType(family core.IndexFamily, metricType string) Result {
	var result Result

	if family != core.FamilyHNSW {
		return result
	}

	metric := strings.ToUpper(metricType)
	for _, m := range hnswMetricTypes {
		if metric == m {
			return result
		}
	}

	result.AddError(fmt.Sprintf("metric type %q not supported for HNSW, supported: %v",
		metricType, hnswMetricTypes))
	return result
}

func checkHNSW(params core.ParameterSet, w Workload) Result {
	var result Result

	m := intParam(params, "M", defaultM)
	efc := intParam(params, "efConstruction", defaultEfConstruction)

	if m < HNSWMinM || m > HNSWMaxM {
		result.AddError(fmt.Sprintf("HNSW M=%d out of valid range [%d, %d]",
			m, HNSWMinM, HNSWMaxM))
	}

	// staying inside the hard range is not enough, large M blows up memory
	if m > HNSWRecommendedMaxM {
		result.AddError(fmt.Sprintf(
			"HNSW M=%d exceeds recommended maximum (%d); high M values can cause OOM errors",
			m, HNSWRecommendedMaxM))
	}

	if efc < HNSWMinEfConstruction {
		result.AddError(fmt.Sprintf("HNSW efConstruction=%d below minimum (%d)",
			efc, HNSWMinEfConstruction))
	} else if efc > HNSWMaxEfConstruction {
		result.AddError(fmt.Sprintf("HNSW efConstruction=%d exceeds maximum (%d)",
			efc, HNSWMaxEfConstruction))
	}

	if efc < m*10 {
		result.AddWarning(fmt.Sprintf(
			"HNSW efConstruction=%d should be >= %d (10x M=%d) for good recall, current ratio %.1fx",
			efc, m*10, m, float64(efc)/float64(m)))
	}

	if efc > 1000 {
		result.AddWarning(fmt.Sprintf(
			"HNSW efConstruction=%d is very high and will slow down index building", efc))
	}

	if w.NumVectors > 0 && w.Dimensions > 0 && w.MemoryBudgetGB > 0 {
		result.Merge(checkHNSWMemory(m, w))
	}

	return result
}

func checkHNSWMemory(m int, w Workload) Result {
	var result Result

	// base vectors plus 2*M edges of 8 bytes per node, with 20% overhead
	baseBytes := float64(w.NumVectors) * float64(w.Dimensions) * floatVectorBytesPerDim
	graphBytes := float64(w.NumVectors) * float64(m) * 2 * 8
	estimatedGB := (baseBytes + graphBytes) * hnswOverheadMultiplier / bytesPerGiB

	switch {
	case estimatedGB > w.MemoryBudgetGB*0.9:
		result.AddError(fmt.Sprintf(
			"estimated HNSW memory %.1fGB exceeds 90%% of budget (%.1fGB of %vGB total); reduce M or the vector count",
			estimatedGB, w.MemoryBudgetGB*0.9, w.MemoryBudgetGB))
	case estimatedGB > w.MemoryBudgetGB*0.75:
		result.AddWarning(fmt.Sprintf(
			"estimated HNSW memory %.1fGB uses %.1f%% of budget (%vGB), monitor memory closely",
			estimatedGB, estimatedGB/w.MemoryBudgetGB*100, w.MemoryBudgetGB))
	}

	return result
}

func checkIVF(family core.IndexFamily, params core.ParameterSet, w Workload) Result {
	var result Result

	nlist := intParam(params, "nlist", defaultNlist)

	if nlist < IVFMinNlist || nlist > IVFMaxNlist {
		result.AddError(fmt.Sprintf("IVF nlist=%d out of valid range [%d, %d]",
			nlist, IVFMinNlist, IVFMaxNlist))
	}

	if w.NumVectors > 0 {
		// rule of thumb: sqrt(N) to 4*sqrt(N) clusters
		recommendedMin := int(math.Sqrt(float64(w.NumVectors)))
		recommendedMax := int(4 * math.Sqrt(float64(w.NumVectors)))

		if nlist < recommendedMin {
			result.AddWarning(fmt.Sprintf(
				"IVF nlist=%d is low for %s vectors, recommended range [%d, %d]; low nlist hurts search performance",
				nlist, humanize.Comma(w.NumVectors), recommendedMin, recommendedMax))
		} else if nlist > recommendedMax {
			result.AddWarning(fmt.Sprintf(
				"IVF nlist=%d is high for %s vectors, recommended range [%d, %d]; high nlist increases search latency",
				nlist, humanize.Comma(w.NumVectors), recommendedMin, recommendedMax))
		}

		if int64(nlist) > w.NumVectors {
			result.AddWarning(fmt.Sprintf("IVF nlist=%d exceeds the number of vectors (%s)",
				nlist, humanize.Comma(w.NumVectors)))
		}
	}

	if family == core.FamilyIVFPQ {
		result.Merge(checkPQ(params, w.Dimensions))
	}

	if family == core.FamilyIVFFlat && w.NumVectors > 0 && w.Dimensions > 0 && w.MemoryBudgetGB > 0 {
		result.Merge(checkIVFFlatMemory(nlist, w))
	}

	return result
}

func checkPQ(params core.ParameterSet, dimensions int) Result {
	var result Result

	mv, ok := params["m"]
	if !ok {
		result.AddWarning("IVF_PQ parameter 'm' (number of sub-vectors) not specified")
		return result
	}

	m := int(mv)
	nbits := intParam(params, "nbits", defaultNbits)

	if m <= 0 {
		result.AddError(fmt.Sprintf("IVF_PQ m=%d must be positive", m))
		return result
	}

	if dimensions > 0 && dimensions%m != 0 {
		result.AddError(fmt.Sprintf(
			"IVF_PQ m=%d must divide dimensions (%d) evenly: %d %% %d = %d",
			m, dimensions, dimensions, m, dimensions%m))
	}

	if nbits != 8 && nbits != 16 {
		result.AddWarning(fmt.Sprintf(
			"IVF_PQ nbits=%d is non-standard, typical values are 8 or 16", nbits))
	}

	if dimensions > 0 && float64(m) > float64(dimensions)/2 {
		result.AddWarning(fmt.Sprintf(
			"IVF_PQ m=%d is very high relative to dimensions (%d) and may reduce recall",
			m, dimensions))
	}

	return result
}

func checkIVFFlatMemory(nlist int, w Workload) Result {
	var result Result

	// full vectors plus centroids, with 10% overhead
	vectorBytes := float64(w.NumVectors) * float64(w.Dimensions) * floatVectorBytesPerDim
	centroidBytes := float64(nlist) * float64(w.Dimensions) * floatVectorBytesPerDim
	estimatedGB := (vectorBytes + centroidBytes) * 1.1 / bytesPerGiB

	switch {
	case estimatedGB > w.MemoryBudgetGB*0.9:
		result.AddError(fmt.Sprintf(
			"estimated IVF_FLAT memory %.1fGB exceeds 90%% of budget (%.1fGB of %vGB total)",
			estimatedGB, w.MemoryBudgetGB*0.9, w.MemoryBudgetGB))
	case estimatedGB > w.MemoryBudgetGB*0.75:
		result.AddWarning(fmt.Sprintf(
			"estimated IVF_FLAT memory %.1fGB uses %.1f%% of budget (%vGB)",
			estimatedGB, estimatedGB/w.MemoryBudgetGB*100, w.MemoryBudgetGB))
	}

	return result
}

func checkFlat(w Workload) Result {
	var result Result

	if w.NumVectors > 1_000_000 {
		result.AddWarning(fmt.Sprintf(
			"FLAT index with %s vectors uses brute force search; consider HNSW or IVF for better performance",
			humanize.Comma(w.NumVectors)))
	}

	if w.NumVectors > 0 && w.Dimensions > 0 && w.MemoryBudgetGB > 0 {
		estimatedGB := float64(w.NumVectors) * float64(w.Dimensions) * floatVectorBytesPerDim / bytesPerGiB
		if estimatedGB > w.MemoryBudgetGB*0.9 {
			result.AddError(fmt.Sprintf(
				"estimated FLAT memory %.1fGB exceeds budget (%vGB)",
				estimatedGB, w.MemoryBudgetGB))
		}
	}

	return result
}

// intParam reads a numeric parameter, truncating toward zero, or returns
// the default when absent
func intParam(params core.ParameterSet, key string, def int) int {
	if v, ok := params[key]; ok {
		return int(v)
	}
	return def
}
