// SPDX-License-Identifier: MIT
// Package: arrayset/sparseset
//
// errors.go - the single precondition fault class of the package.
//
// Policy:
//   • Set is a performance container, not a validating one: it never returns
//     errors from its methods.
//   • Violated preconditions panic with an error wrapping ErrPrecondition.
//     Method context is attached as "<Method>: <detail>: <sentinel>".
//   • Absence-based operations (Remove of a non-member, Insert of a member)
//     are defined no-ops and never reach this file.

package sparseset

import (
	"errors"
	"fmt"
)

// ErrPrecondition is the panic payload class for every misuse of Set.
// Recover sites branch with errors.Is(err, ErrPrecondition).
var ErrPrecondition = errors.New("sparseset: precondition violated")

// Method tags used as panic context.
const (
	methodNew               = "New"
	methodResize            = "Resize"
	methodInit              = "Init"
	methodInitFromAdjacency = "InitFromAdjacency"
	methodNeighborhoods     = "Neighborhoods"
	methodInsert            = "Insert"
	methodInsertUnchecked   = "InsertUnchecked"
	methodMoveTo            = "MoveTo"
	methodAt                = "At"
)

// violate panics with "<method>: <detail>: sparseset: precondition violated".
func violate(method, format string, args ...interface{}) {
	panic(fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrPrecondition))
}

// mustCapacity rejects negative capacities.
func mustCapacity(method string, capacity int) {
	if capacity < 0 {
		violate(method, "capacity=%d < 0", capacity)
	}
}
