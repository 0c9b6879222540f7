package advisor

import (
	"github.com/dshills/IndexAdvisor/core"
)

// Decision thresholds
const (
	smallDatasetCutoff = 10_000
	billionScaleCutoff = 100_000_000
	lowLatencyCutoffMS = 30
	gpuQPSCutoff       = 5_000
	hnswBudgetHeadroom = 0.8
	pqBudgetFraction   = 0.5
	sq8BudgetFraction  = 0.7
)

// ruleContext carries the requirement plus the shared HNSW memory probe,
// so every rule prices HNSW against the same figure.
type ruleContext struct {
	req       core.Requirement
	hnswMemGB float64
}

// selectionRule pairs a predicate with the family chosen when it fires
type selectionRule struct {
	name    string
	family  core.IndexFamily
	matches func(ruleContext) bool
}

// selectionRules is evaluated in order and the first match wins. The final
// rule always matches.
var selectionRules = []selectionRule{
	{
		name:   "small dataset",
		family: core.FamilyFlat,
		matches: func(c ruleContext) bool {
			return c.req.NumVectors < smallDatasetCutoff
		},
	},
	{
		name:   "billion scale",
		family: core.FamilyDiskANN,
		matches: func(c ruleContext) bool {
			return c.req.NumVectors > billionScaleCutoff
		},
	},
	{
		name:   "low latency",
		family: core.FamilyHNSW,
		matches: func(c ruleContext) bool {
			return c.req.LatencyRequirementMS < lowLatencyCutoffMS &&
				c.hnswMemGB < c.req.MemoryBudgetGB*hnswBudgetHeadroom
		},
	},
	{
		name:   "high qps with gpu",
		family: core.FamilyGPUIVFFlat,
		matches: func(c ruleContext) bool {
			return c.req.QPSTarget > gpuQPSCutoff && c.req.HasGPU
		},
	},
	{
		name:   "memory constrained",
		family: core.FamilyIVFPQ,
		matches: func(c ruleContext) bool {
			return c.req.MemoryBudgetGB < c.hnswMemGB*pqBudgetFraction
		},
	},
	{
		name:   "tight memory",
		family: core.FamilyIVFSQ8,
		matches: func(c ruleContext) bool {
			return c.req.MemoryBudgetGB < c.hnswMemGB*sq8BudgetFraction
		},
	},
	{
		name:    "balanced default",
		family:  core.FamilyIVFFlat,
		matches: func(ruleContext) bool { return true },
	},
}

// selectFamily walks the rule chain for a validated requirement
func selectFamily(req core.Requirement) core.IndexFamily {
	ctx := ruleContext{
		req: req,
		hnswMemGB: EstimateHNSWMemoryGB(
			req.NumVectors, req.Dimensions, DefaultGraphDegree(req.NumVectors)),
	}
	for _, rule := range selectionRules {
		if rule.matches(ctx) {
			return rule.family
		}
	}
	// unreachable, the final rule always matches
	return core.FamilyIVFFlat
}
