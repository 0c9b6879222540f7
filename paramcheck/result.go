package paramcheck

// Result accumulates validation errors and warnings. Errors block a
// deployment, warnings call for review.
type Result struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// AddError records a blocking problem
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// AddWarning records a non-blocking problem
func (r *Result) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// HasErrors reports whether any blocking problem was recorded
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings reports whether any non-blocking problem was recorded
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Merge appends the findings of another result into this one
func (r *Result) Merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}
