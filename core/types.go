package core

// IndexFamily identifies a vector index layout by its vendor wire name
type IndexFamily string

// Supported index families
const (
	FamilyFlat       IndexFamily = "FLAT"
	FamilyHNSW       IndexFamily = "HNSW"
	FamilyIVFFlat    IndexFamily = "IVF_FLAT"
	FamilyIVFSQ8     IndexFamily = "IVF_SQ8"
	FamilyIVFPQ      IndexFamily = "IVF_PQ"
	FamilyDiskANN    IndexFamily = "DiskANN"
	FamilyGPUIVFFlat IndexFamily = "GPU_IVF_FLAT"
	FamilyGPUIVFPQ   IndexFamily = "GPU_IVF_PQ"
)

// Valid reports whether f is a known index family
func (f IndexFamily) Valid() bool {
	switch f {
	case FamilyFlat, FamilyHNSW, FamilyIVFFlat, FamilyIVFSQ8, FamilyIVFPQ,
		FamilyDiskANN, FamilyGPUIVFFlat, FamilyGPUIVFPQ:
		return true
	}
	return false
}

// Families lists the index families a recommendation can be assembled for,
// in display order
func Families() []IndexFamily {
	return []IndexFamily{
		FamilyFlat,
		FamilyHNSW,
		FamilyIVFFlat,
		FamilyIVFSQ8,
		FamilyIVFPQ,
		FamilyDiskANN,
		FamilyGPUIVFFlat,
	}
}

// UseCase labels the workload a requirement came from. It is carried through
// to output unchanged and never influences sizing.
type UseCase string

// Known use case labels
const (
	UseCaseRAG            UseCase = "RAG/QA System"
	UseCaseSimilarity     UseCase = "Similarity Search"
	UseCaseRecommendation UseCase = "Recommendation Engine"
	UseCaseImageSearch    UseCase = "Image Search"
	UseCaseEcommerce      UseCase = "E-commerce Search"
	UseCaseGeneral        UseCase = "general"
)

// UseCases lists the known use case labels, in display order
func UseCases() []UseCase {
	return []UseCase{
		UseCaseRAG,
		UseCaseSimilarity,
		UseCaseRecommendation,
		UseCaseImageSearch,
		UseCaseEcommerce,
		UseCaseGeneral,
	}
}

// Requirement describes a deployment workload to size an index for
type Requirement struct {
	NumVectors           int64   `json:"num_vectors"`
	Dimensions           int     `json:"dimensions"`
	LatencyRequirementMS float64 `json:"latency_requirement_ms"`
	MemoryBudgetGB       float64 `json:"memory_budget_gb"`
	QPSTarget            int     `json:"qps_target"`
	UseCase              UseCase `json:"use_case"`
	HasGPU               bool    `json:"has_gpu"`
}

// ParameterSet holds family-specific tuning values keyed by the vendor
// parameter names ("M", "efConstruction", "nlist", ...)
type ParameterSet map[string]float64

// Recommendation is a fully sized index choice for one requirement
type Recommendation struct {
	Family            IndexFamily   `json:"family"`
	Params            ParameterSet  `json:"params"`
	MemoryGB          float64       `json:"memory_gb"`
	BuildTimeMin      float64       `json:"build_time_min"`
	QueryLatencyP95MS float64       `json:"query_latency_p95_ms"`
	RecallAt10        float64       `json:"recall_at_10"`
	Reason            string        `json:"reason"`
	Confidence        float64       `json:"confidence"`
	Alternatives      []Alternative `json:"alternatives,omitempty"`
}

// Alternative is a runner-up choice sized for the same requirement. It
// carries the same estimates as a Recommendation but can never nest
// further alternatives.
type Alternative struct {
	Family            IndexFamily  `json:"family"`
	Params            ParameterSet `json:"params"`
	MemoryGB          float64      `json:"memory_gb"`
	BuildTimeMin      float64      `json:"build_time_min"`
	QueryLatencyP95MS float64      `json:"query_latency_p95_ms"`
	RecallAt10        float64      `json:"recall_at_10"`
	Reason            string       `json:"reason"`
	Confidence        float64      `json:"confidence"`
}
