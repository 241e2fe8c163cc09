package driver

import (
	"errors"
	"fmt"

	"deadstore/internal/analysis"
	"deadstore/internal/diag"
	"deadstore/internal/flow"
	"deadstore/internal/scope"
)

// FailureKind classifies why a vector produced no report.
type FailureKind int

const (
	FailureUnknown FailureKind = iota
	FailureUndeclaredVariable
	FailureNoParentScope
	FailureFlowExhausted
	FailureFlowMismatch
	FailureUnsupportedNode
	FailureIncomplete
)

var failureKindNames = map[FailureKind]string{
	FailureUnknown:            "Unknown",
	FailureUndeclaredVariable: "UndeclaredVariable",
	FailureNoParentScope:      "NoParentScope",
	FailureFlowExhausted:      "FlowExhausted",
	FailureFlowMismatch:       "FlowMismatch",
	FailureUnsupportedNode:    "UnsupportedNode",
	FailureIncomplete:         "Incomplete",
}

func (k FailureKind) String() string {
	if name, ok := failureKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("FailureKind(%d)", int(k))
}

// Code is the diagnostic code reported for the kind.
func (k FailureKind) Code() string {
	switch k {
	case FailureUndeclaredVariable:
		return diag.ErrorUndeclaredVariable
	case FailureNoParentScope:
		return diag.ErrorNoParentScope
	case FailureFlowExhausted:
		return diag.ErrorFlowExhausted
	case FailureFlowMismatch:
		return diag.ErrorFlowMismatch
	case FailureUnsupportedNode:
		return diag.ErrorUnsupportedNode
	case FailureIncomplete:
		return diag.ErrorIncomplete
	default:
		return ""
	}
}

// Structural reports whether the kind points at the program or the
// analyzer rather than at a resource limit.
func (k FailureKind) Structural() bool {
	return k != FailureIncomplete
}

// Classify maps a traversal error onto its kind.
func Classify(err error) FailureKind {
	switch {
	case err == nil:
		return FailureUnknown
	case analysis.IsIncomplete(err):
		return FailureIncomplete
	case errors.Is(err, scope.ErrUndeclaredVariable):
		return FailureUndeclaredVariable
	case errors.Is(err, scope.ErrNoParentScope):
		return FailureNoParentScope
	case errors.Is(err, flow.ErrFlowExhausted):
		return FailureFlowExhausted
	case errors.Is(err, flow.ErrFlowMismatch):
		return FailureFlowMismatch
	case errors.Is(err, analysis.ErrUnsupportedNode):
		return FailureUnsupportedNode
	default:
		return FailureUnknown
	}
}

// Failure is one vector that did not finish.
type Failure struct {
	Index  uint64
	Vector flow.Vector
	Kind   FailureKind
	Err    error
}

func (f Failure) String() string {
	return fmt.Sprintf("vector %s failed (%s): %v", f.Vector, f.Kind, f.Err)
}
