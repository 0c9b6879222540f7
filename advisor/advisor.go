package advisor

import (
	"github.com/dshills/IndexAdvisor/core"
)

// Advisor sizes vector indexes for workload requirements. It holds no
// state; a single value can serve concurrent callers.
type Advisor struct{}

// New creates an Advisor
func New() *Advisor {
	return &Advisor{}
}

// Recommend validates req, picks an index family and assembles the fully
// sized recommendation for it. Identical requirements always produce
// identical recommendations.
func (a *Advisor) Recommend(req core.Requirement) (core.Recommendation, error) {
	if err := core.ValidateRequirement(req); err != nil {
		return core.Recommendation{}, err
	}
	return a.Assemble(selectFamily(req), req)
}

// Select runs only the family decision for req, without sizing parameters
// or estimates
func (a *Advisor) Select(req core.Requirement) (core.IndexFamily, error) {
	if err := core.ValidateRequirement(req); err != nil {
		return "", err
	}
	return selectFamily(req), nil
}
