// Package pqset defines the comparator type and sentinel errors
// for the heap-plus-membership priority queue.
package pqset

import "errors"

// Sentinel errors for PriorityQueueSet operations.
var (
	// ErrEmpty indicates Pop or Peek was called on an empty queue.
	// Callers are expected to check IsEmpty first; this is a precondition violation.
	ErrEmpty = errors.New("pqset: queue is empty")

	// ErrNilComparator indicates a nil Less function was supplied to the constructor.
	ErrNilComparator = errors.New("pqset: comparator is nil")
)

// Less reports whether a must be popped before b.
// It must be a strict ordering: Less(a, a) == false.
//
// The queue has no built-in polarity: "a < b" yields a min-queue,
// "a > b" yields a max-queue.
type Less[T any] func(a, b T) bool
