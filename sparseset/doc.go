// Package sparseset provides Set, a fixed-capacity, array-backed set of small
// non-negative integers (typically vertex IDs) tuned for the access pattern of
// graph algorithms such as coloring, independent-set search and
// branch-and-bound enumeration.
//
// What
//
//   - A backing slice of Cap() slots plus two cursors, first and last.
//   - Membership is positional: the active range elements[first..last]
//     holds the members; every slot outside it is stale and never read.
//   - Remove is swap-to-end: the removed slot receives the last active value
//     and the active range shrinks by one. No shifting, no order.
//   - MoveTo transfers a value between two sets (Remove here, Insert there).
//   - InitFromAdjacency bulk-loads the neighbors of one vertex; Neighborhoods
//     builds one such set per vertex.
//
// Complexity (n = Len())
//
//	Contains        O(n)   linear scan, deliberately not O(1)
//	Insert          O(n)   duplicate check + O(1) append
//	InsertUnchecked O(1)   opt-in fast path, caller guarantees x is absent
//	Remove          O(n)   scan, then O(1) swap-to-end
//	MoveTo          O(n+m) Remove + Insert on the destination
//	Clear           O(1)   cursors only, backing slots keep stale values
//	Len/Empty/At    O(1)
//
// Ordering
//
//	Iteration order is unspecified. Remove relocates the last active value
//	into the removed slot, so any Values() view or All() sequence obtained
//	before a mutation is invalidated by it.
//
// Failure policy
//
//	Set never returns errors. Precondition violations (capacity exceeded,
//	index outside the active range, shrinking below the active range,
//	negative values or capacities, nil collaborators) are programmer errors
//	and panic immediately with an error wrapping ErrPrecondition:
//
//		defer func() {
//			if r := recover(); r != nil {
//				if err, ok := r.(error); ok && errors.Is(err, sparseset.ErrPrecondition) {
//					// ...
//				}
//			}
//		}()
//
//	Absence is not an error: Remove of a non-member and Insert of a member
//	are no-ops.
//
// Concurrency
//
//	Set holds no locks. Concurrent mutation must be serialized by the caller
//	(one set per worker, or an external mutex). MoveTo is two separate
//	mutations; a reader observing between them sees x in neither set.
//
// Usage
//
//	adj := sparseset.AdjacencyList{0: {1, 2, 3}, 1: {0}, 2: {0}, 3: {0}}
//	eligible := sparseset.NewFromAdjacency(adj, 0) // {1,2,3}
//	chosen := sparseset.New(adj.Len())
//	eligible.MoveTo(2, chosen)                     // eligible {1,3}, chosen {2}
//	for v := range eligible.All() {
//		_ = v
//	}
package sparseset
