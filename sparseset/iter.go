// SPDX-License-Identifier: MIT
// Package: arrayset/sparseset
//
// iter.go - views over the active range.
//
// Both views are borrowed: any Insert, Remove, MoveTo, Clear, Resize or Init
// invalidates them.

package sparseset

import "iter"

// Values returns the active range as a slice aliasing the backing storage.
// Writes through it change the set's slots directly; the caller must keep
// values distinct and non-negative. Appending to the returned slice never
// writes into the set (its capacity is clipped to its length).
func (s *Set) Values() []int {
	return s.elements[s.first : s.last+1 : s.last+1]
}

// All returns a read-only sequence over the members in active-range order.
//
//	for v := range s.All() { ... }
func (s *Set) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := s.first; i <= s.last; i++ {
			if !yield(s.elements[i]) {
				return
			}
		}
	}
}

// AppendTo appends the members to dst and returns the extended slice.
// The result does not alias the set.
func (s *Set) AppendTo(dst []int) []int {
	return append(dst, s.elements[s.first:s.last+1]...)
}
