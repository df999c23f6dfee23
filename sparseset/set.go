// SPDX-License-Identifier: MIT
// Package: arrayset/sparseset
//
// set.go - the Set type: construction, sizing, queries and mutation.
//
// Contract:
//   • Active range is elements[first..last] inclusive; last == first-1 is empty.
//   • first is a stored cursor fixed at 0; only Clear/Init write it.
//   • Values in the active range are distinct (Insert checks duplicates).
//   • Order in the active range is unspecified; Remove swaps to end.
//   • Capacity never grows on Insert; Resize/Init are the only sizing paths.
//
// Complexity: see doc.go.

package sparseset

import (
	"strconv"
	"strings"
)

// unusedSlot fills slots that were never part of the active range.
const unusedSlot = -1

// Set is a dynamic array representation of a sparse set of small
// non-negative integers. Lookups are linear; removal and re-insertion are
// constant time once the element is located.
//
// The zero value is not ready for use; construct with New or NewEmpty.
type Set struct {
	elements []int // backing storage, len == capacity
	first    int   // index of the first active slot
	last     int   // index of the last active slot; first-1 when empty
}

// New returns an empty Set able to hold capacity distinct values.
// Panics (ErrPrecondition) when capacity < 0.
// Complexity: O(capacity) time and space.
func New(capacity int) *Set {
	mustCapacity(methodNew, capacity)

	s := &Set{
		elements: make([]int, capacity),
		first:    0,
		last:     -1,
	}
	fillUnused(s.elements)

	return s
}

// NewEmpty returns an empty Set with zero capacity. It must be sized with
// Resize or Init before anything can be inserted.
func NewEmpty() *Set {
	return New(0)
}

// Resize changes the capacity to n, keeping slot contents and both cursors.
// Slots added by growth hold unusedSlot.
//
// Panics (ErrPrecondition) when n < 0 or when n would truncate the active
// range (n < Last()+1).
//
// Complexity: O(n) when the backing slice has to be reallocated, O(1) otherwise.
func (s *Set) Resize(n int) {
	mustCapacity(methodResize, n)
	if n < s.last+1 {
		violate(methodResize, "capacity=%d truncates active range [%d,%d]", n, s.first, s.last)
	}

	s.elements = resized(s.elements, n)
}

// Init resizes to capacity and resets the set to empty, discarding prior
// membership. Stale slot contents are kept.
// Panics (ErrPrecondition) when capacity < 0.
func (s *Set) Init(capacity int) {
	mustCapacity(methodInit, capacity)

	s.first = 0
	s.last = -1
	s.elements = resized(s.elements, capacity)
}

// Contains reports whether x is in the set. It scans the active range.
// Complexity: O(Len()).
func (s *Set) Contains(x int) bool {
	for i := s.first; i <= s.last; i++ {
		if s.elements[i] == x {
			return true
		}
	}

	return false
}

// Len returns the number of members (last - first + 1).
func (s *Set) Len() int { return s.last - s.first + 1 }

// Empty reports whether the set has no members.
func (s *Set) Empty() bool { return s.last < s.first }

// Cap returns the maximum number of members the set can hold.
func (s *Set) Cap() int { return len(s.elements) }

// First returns the first cursor of the active range.
func (s *Set) First() int { return s.first }

// Last returns the last cursor of the active range (First()-1 when empty).
func (s *Set) Last() int { return s.last }

// At returns the value stored at physical slot index.
// The index addresses the backing slice, not a logical position.
//
// Panics (ErrPrecondition) when index lies outside [First(), Last()].
func (s *Set) At(index int) int {
	if index < s.first || index > s.last {
		violate(methodAt, "index=%d outside active range [%d,%d]", index, s.first, s.last)
	}

	return s.elements[index]
}

// Insert adds x. Inserting a member is a no-op.
//
// Panics (ErrPrecondition) when x < 0 or when x is absent and the set is
// already at capacity.
//
// Complexity: O(Len()) for the duplicate check.
func (s *Set) Insert(x int) {
	if s.Contains(x) {
		return
	}
	s.push(methodInsert, x)
}

// InsertUnchecked appends x without the duplicate check. The caller
// guarantees x is not a member; inserting a member breaks distinctness and
// later Len/Remove results.
//
// Panics (ErrPrecondition) when x < 0 or the set is at capacity.
//
// Complexity: O(1).
func (s *Set) InsertUnchecked(x int) {
	s.push(methodInsertUnchecked, x)
}

// push writes x into the slot after last.
func (s *Set) push(method string, x int) {
	if x < 0 {
		violate(method, "value=%d < 0", x)
	}
	if s.last+1 >= len(s.elements) {
		violate(method, "value=%d exceeds capacity=%d", x, len(s.elements))
	}

	s.last++
	s.elements[s.last] = x
}

// Remove deletes x. Removing a non-member is a no-op.
//
// The slot of x receives the last active value and x is parked in the old
// last slot, then the active range shrinks by one. Order is not preserved.
//
// Complexity: O(Len()) to locate x, O(1) to remove it.
func (s *Set) Remove(x int) {
	for i := s.first; i <= s.last; i++ {
		if s.elements[i] == x {
			s.elements[i] = s.elements[s.last]
			s.elements[s.last] = x
			s.last--
			return
		}
	}
}

// MoveTo removes x from s and inserts it into other. The value is copied;
// storage is never shared.
//
// The two steps are independent mutations, not a transaction. If x is not
// a member of s it is still inserted into other. Moving a member of s to s
// itself leaves the set unchanged.
//
// Panics (ErrPrecondition) when other is nil, or from other.Insert.
func (s *Set) MoveTo(x int, other *Set) {
	if other == nil {
		violate(methodMoveTo, "destination set is nil")
	}

	s.Remove(x)
	other.Insert(x)
}

// Clear empties the set in O(1). Backing slots are not zeroed.
func (s *Set) Clear() {
	s.first = 0
	s.last = -1
}

// Clone returns an independent copy with the same capacity, cursors and
// slot contents.
// Complexity: O(Cap()).
func (s *Set) Clone() *Set {
	elements := make([]int, len(s.elements))
	copy(elements, s.elements)

	return &Set{elements: elements, first: s.first, last: s.last}
}

// String renders the members in active-range order, e.g. "{5 7 9}".
func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i := s.first; i <= s.last; i++ {
		if i > s.first {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(s.elements[i]))
	}
	sb.WriteByte('}')

	return sb.String()
}

// resized returns a slice of length n holding the first min(n, len(elements))
// values of elements; grown slots hold unusedSlot.
func resized(elements []int, n int) []int {
	if n <= len(elements) {
		return elements[:n]
	}
	if n <= cap(elements) {
		grown := elements[:n]
		fillUnused(grown[len(elements):])
		return grown
	}

	grown := make([]int, n)
	copy(grown, elements)
	fillUnused(grown[len(elements):])

	return grown
}

func fillUnused(slots []int) {
	for i := range slots {
		slots[i] = unusedSlot
	}
}
