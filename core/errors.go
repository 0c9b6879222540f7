package core

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrInvalidRequirement = errors.New("invalid requirement")
	ErrUnsupportedFamily  = errors.New("unsupported index family")
)

// InvalidRequirementError reports the first requirement field that failed
// validation. Field holds the wire name of the offending field.
type InvalidRequirementError struct {
	Field  string
	Reason string
}

func (e *InvalidRequirementError) Error() string {
	return fmt.Sprintf("invalid requirement: %s %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidRequirement) match
func (e *InvalidRequirementError) Is(target error) bool {
	return target == ErrInvalidRequirement
}

// UnsupportedFamilyError reports an index family no recommendation can be
// assembled for.
type UnsupportedFamilyError struct {
	Family IndexFamily
}

func (e *UnsupportedFamilyError) Error() string {
	return fmt.Sprintf("unsupported index family: %s", e.Family)
}

// Is makes errors.Is(err, ErrUnsupportedFamily) match
func (e *UnsupportedFamilyError) Is(target error) bool {
	return target == ErrUnsupportedFamily
}
