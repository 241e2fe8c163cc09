// Package flow enumerates the branch decisions the analysis replays.
//
// Every if, while and for statement in a program is a branch point. A
// Vector assigns one boolean to each branch point in pre-order textual
// order, and a Space yields every such vector.
package flow

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"deadstore/internal/ast"
)

var (
	ErrFlowExhausted       = errors.New("flow exhausted")
	ErrFlowMismatch        = errors.New("flow mismatch")
	ErrTooManyBranchPoints = errors.New("too many branch points")
)

// MaxBranchPoints bounds a Space so that its size fits in a uint64.
const MaxBranchPoints = 62

// IsBranchPoint reports whether node contributes a decision.
func IsBranchPoint(node ast.Node) bool {
	switch node.(type) {
	case *ast.IfStmt, *ast.WhileStmt, *ast.ForStmt:
		return true
	}
	return false
}

// CountBranchPoints counts the branch points textually present under node,
// node included. Function bodies count too; loops count once.
func CountBranchPoints(node ast.Node) int {
	if node == nil {
		return 0
	}
	n := 0
	ast.Inspect(node, func(child ast.Node) bool {
		if IsBranchPoint(child) {
			n++
		}
		return true
	})
	return n
}

// Vector is one decision per branch point.
type Vector []bool

func (v Vector) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, bit := range v {
		if i > 0 {
			b.WriteByte(' ')
		}
		if bit {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	b.WriteByte(']')
	return b.String()
}

// Space is the set of all 2^n vectors over n branch points.
type Space struct {
	n int
}

func NewSpace(n int) (Space, error) {
	if n < 0 || n > MaxBranchPoints {
		return Space{}, fmt.Errorf("%w: %d (limit %d)", ErrTooManyBranchPoints, n, MaxBranchPoints)
	}
	return Space{n: n}, nil
}

// BranchPoints is n.
func (s Space) BranchPoints() int { return s.n }

// Size is 2^n.
func (s Space) Size() uint64 { return uint64(1) << s.n }

// Vector returns the i-th vector: the n-bit binary form of i with the first
// branch point as the most significant bit.
func (s Space) Vector(i uint64) Vector {
	v := make(Vector, s.n)
	for j := range v {
		v[j] = i>>(s.n-1-j)&1 == 1
	}
	return v
}

// Enumerate yields every vector in ascending order, so "false" is explored
// before "true" at each position. The sequence is lazy and may be ranged
// over more than once.
func (s Space) Enumerate() iter.Seq[Vector] {
	return func(yield func(Vector) bool) {
		size := s.Size()
		for i := uint64(0); i < size; i++ {
			if !yield(s.Vector(i)) {
				return
			}
		}
	}
}
