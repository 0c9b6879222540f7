package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/IndexAdvisor/core"
)

func TestDefaultGraphDegree(t *testing.T) {
	tests := []struct {
		n    int64
		want int
	}{
		{1, 8},
		{99_999, 8},
		{100_000, 16},
		{999_999, 16},
		{1_000_000, 24},
		{9_999_999, 24},
		{10_000_000, 32},
		{1_000_000_000, 32},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultGraphDegree(tt.n), "n=%d", tt.n)
	}
}

func TestCalculateParams(t *testing.T) {
	tests := []struct {
		name   string
		family core.IndexFamily
		req    core.Requirement
		want   core.ParameterSet
	}{
		{
			name:   "flat has nothing to tune",
			family: core.FamilyFlat,
			req:    core.Requirement{NumVectors: 5_000, Dimensions: 128},
			want:   core.ParameterSet{},
		},
		{
			name:   "hnsw scales with graph degree",
			family: core.FamilyHNSW,
			req:    core.Requirement{NumVectors: 500_000, Dimensions: 768},
			want:   core.ParameterSet{"M": 16, "efConstruction": 240, "ef": 64},
		},
		{
			name:   "hnsw degree follows the dataset bucket",
			family: core.FamilyHNSW,
			req:    core.Requirement{NumVectors: 20_000_000, Dimensions: 768},
			want:   core.ParameterSet{"M": 32, "efConstruction": 480, "ef": 128},
		},
		{
			name:   "ivf flat centers on sqrt n",
			family: core.FamilyIVFFlat,
			req:    core.Requirement{NumVectors: 1_000_000, Dimensions: 768},
			want:   core.ParameterSet{"nlist": 1000, "nprobe": 100},
		},
		{
			name:   "ivf nlist clamps low",
			family: core.FamilyIVFFlat,
			req:    core.Requirement{NumVectors: 10_000, Dimensions: 128},
			want:   core.ParameterSet{"nlist": 128, "nprobe": 16},
		},
		{
			name:   "ivf nlist clamps high",
			family: core.FamilyIVFFlat,
			req:    core.Requirement{NumVectors: 1_000_000_000, Dimensions: 128},
			want:   core.ParameterSet{"nlist": 16384, "nprobe": 1638},
		},
		{
			name:   "sq8 shares the ivf heuristics",
			family: core.FamilyIVFSQ8,
			req:    core.Requirement{NumVectors: 1_000_000, Dimensions: 768},
			want:   core.ParameterSet{"nlist": 1000, "nprobe": 100},
		},
		{
			name:   "pq picks the largest dividing subvector count",
			family: core.FamilyIVFPQ,
			req:    core.Requirement{NumVectors: 1_000_000, Dimensions: 768},
			want:   core.ParameterSet{"nlist": 1000, "m": 32, "nbits": 8, "nprobe": 150},
		},
		{
			name:   "pq dimension 24 lands on 8",
			family: core.FamilyIVFPQ,
			req:    core.Requirement{NumVectors: 1_000_000, Dimensions: 24},
			want:   core.ParameterSet{"nlist": 1000, "m": 8, "nbits": 8, "nprobe": 150},
		},
		{
			name:   "pq falls back when nothing divides",
			family: core.FamilyIVFPQ,
			req:    core.Requirement{NumVectors: 1_000_000, Dimensions: 101},
			want:   core.ParameterSet{"nlist": 1000, "m": 8, "nbits": 8, "nprobe": 150},
		},
		{
			name:   "diskann sizes the search list from latency",
			family: core.FamilyDiskANN,
			req:    core.Requirement{NumVectors: 200_000_000, Dimensions: 768, LatencyRequirementMS: 100},
			want:   core.ParameterSet{"search_list_size": 50},
		},
		{
			name:   "diskann rounds rather than truncates",
			family: core.FamilyDiskANN,
			req:    core.Requirement{NumVectors: 200_000_000, Dimensions: 768, LatencyRequirementMS: 45},
			want:   core.ParameterSet{"search_list_size": 23},
		},
		{
			name:   "gpu ivf leaves nlist unclamped",
			family: core.FamilyGPUIVFFlat,
			req:    core.Requirement{NumVectors: 1_000_000_000, Dimensions: 768},
			want:   core.ParameterSet{"nlist": 31623, "nprobe": 64},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateParams(tt.family, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateParamsUnsupported(t *testing.T) {
	_, err := CalculateParams(core.FamilyGPUIVFPQ, core.Requirement{NumVectors: 1000, Dimensions: 128})
	assert.ErrorIs(t, err, core.ErrUnsupportedFamily)
}

func TestPQSubvectors(t *testing.T) {
	tests := []struct {
		dims   int
		want   int
		wantOK bool
	}{
		{768, 32, true},
		{1536, 32, true},
		{128, 32, true},
		{48, 16, true},
		{24, 8, true},
		{20, 4, true},
		{101, 8, false},
		{2, 8, false},
	}

	for _, tt := range tests {
		m, ok := pqSubvectors(tt.dims)
		assert.Equal(t, tt.want, m, "dims=%d", tt.dims)
		assert.Equal(t, tt.wantOK, ok, "dims=%d", tt.dims)
	}
}
