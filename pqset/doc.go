// Package pqset provides PriorityQueueSet, a dense array-backed binary heap
// kept in lock-step with a membership set.
//
// What:
//
//   - Push one or more values, each sifted up in O(log n).
//   - Pop the extremal value under a caller-supplied strict comparator in O(log n).
//   - Has(v) answers "is v currently queued" in O(1).
//   - Fix(v) restores heap order after the caller changed the priority of v.
//
// Why:
//
//   - Search frontiers (A*, Dijkstra, best-first) need both the cheapest entry
//     and a fast "already discovered?" check. Keeping them in one structure
//     guarantees they never drift apart.
//
// Comparator:
//
//   - There is no fixed polarity. Less(a, b) == true means a pops before b.
//     Supply a < b for a min-queue and a > b for a max-queue.
//   - The comparator may read external state (for example a score map), which
//     is why Fix exists: when that state changes for a queued value, call Fix.
//
// Duplicates:
//
//   - Pushing a value that is already queued is allowed and leaves two copies
//     in the heap. Membership is counted, so Has(v) stays true until every
//     pushed copy has been popped.
//   - Fix on a duplicated value re-sifts one of its copies.
//
// Complexity:
//
//   - Push, Pop, Fix: O(log n). Pop of a value that still has queued
//     duplicates costs an extra O(n) scan to re-locate the remaining copy.
//   - Has, Len, IsEmpty, Peek: O(1).
//
// Errors:
//
//   - ErrEmpty: Pop or Peek on an empty queue.
//   - ErrNilComparator: nil Less passed to NewChecked (New panics instead).
//
// Thread safety:
//
//   - None. A queue belongs to one owner, e.g. a single search run.
package pqset
