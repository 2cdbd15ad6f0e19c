package pqset

// top is the index of the root element.
const top = 0

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }

// PriorityQueueSet is a binary heap ordered by a Less comparator, augmented
// with a counted membership set that is updated on every mutation.
type PriorityQueueSet[T comparable] struct {
	heap  []T       // dense binary heap, root at index 0
	count map[T]int // number of queued copies per value
	index map[T]int // heap position of one queued copy per value
	less  Less[T]   // strict "pops before" predicate
}

// New returns an empty queue ordered by less.
// It panics with ErrNilComparator if less is nil; use NewChecked to get an error instead.
func New[T comparable](less Less[T]) *PriorityQueueSet[T] {
	q, err := NewChecked(less)
	if err != nil {
		panic(err.Error())
	}

	return q
}

// NewChecked is like New but reports a nil comparator as ErrNilComparator.
func NewChecked[T comparable](less Less[T]) (*PriorityQueueSet[T], error) {
	if less == nil {
		return nil, ErrNilComparator
	}

	return &PriorityQueueSet[T]{
		heap:  make([]T, 0, 16),
		count: make(map[T]int),
		index: make(map[T]int),
		less:  less,
	}, nil
}

// Len returns the number of queued entries, duplicates included.
func (q *PriorityQueueSet[T]) Len() int { return len(q.heap) }

// IsEmpty reports whether the queue holds no entries.
func (q *PriorityQueueSet[T]) IsEmpty() bool { return len(q.heap) == 0 }

// Has reports whether v has been pushed more times than it has been popped.
// Complexity: O(1).
func (q *PriorityQueueSet[T]) Has(v T) bool {
	return q.count[v] > 0
}

// Push appends each value to the heap, sifts it up, and records membership.
// Returns the new size.
// Complexity: O(k log n) for k values.
func (q *PriorityQueueSet[T]) Push(values ...T) int {
	for _, v := range values {
		q.heap = append(q.heap, v)
		last := len(q.heap) - 1
		q.place(last)
		q.count[v]++
		q.up(last)
	}

	return len(q.heap)
}

// Peek returns the extremal value without removing it.
// Returns ErrEmpty when the queue is empty.
func (q *PriorityQueueSet[T]) Peek() (T, error) {
	if len(q.heap) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return q.heap[top], nil
}

// Pop removes and returns the extremal value under the comparator.
// Returns ErrEmpty when the queue is empty.
// Complexity: O(log n), plus an O(n) scan when other copies of the
// popped value are still queued.
func (q *PriorityQueueSet[T]) Pop() (T, error) {
	if len(q.heap) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	popped := q.heap[top]
	bottom := len(q.heap) - 1
	if bottom > top {
		q.swap(top, bottom)
	}
	var zero T
	q.heap[bottom] = zero
	q.heap = q.heap[:bottom]

	// The heap is already shrunk, so relocate only sees remaining copies.
	if q.count[popped]--; q.count[popped] <= 0 {
		delete(q.count, popped)
		delete(q.index, popped)
	} else {
		q.relocate(popped)
	}

	if len(q.heap) > 1 {
		q.down(top)
	}

	return popped, nil
}

// Fix restores heap order after the priority of v changed.
// Returns false if v is not queued.
// Complexity: O(log n).
func (q *PriorityQueueSet[T]) Fix(v T) bool {
	i, ok := q.index[v]
	if !ok {
		return false
	}
	if !q.down(i) {
		q.up(i)
	}

	return true
}

// Values returns a copy of the queued entries in heap order.
func (q *PriorityQueueSet[T]) Values() []T {
	out := make([]T, len(q.heap))
	copy(out, q.heap)

	return out
}

// before reports whether the element at i must pop before the element at j.
func (q *PriorityQueueSet[T]) before(i, j int) bool {
	return q.less(q.heap[i], q.heap[j])
}

func (q *PriorityQueueSet[T]) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.place(i)
	q.place(j)
}

// place records i as the position of the value stored there.
func (q *PriorityQueueSet[T]) place(i int) {
	q.index[q.heap[i]] = i
}

// relocate points index[v] at a remaining copy of v after one copy was removed.
func (q *PriorityQueueSet[T]) relocate(v T) {
	for i, w := range q.heap {
		if w == v {
			q.index[v] = i
			return
		}
	}
}

// up moves the element at i towards the root while it outranks its parent.
func (q *PriorityQueueSet[T]) up(i int) {
	for i > top {
		p := parent(i)
		if !q.before(i, p) {
			break
		}
		q.swap(i, p)
		i = p
	}
}

// down moves the element at i towards the leaves while a child outranks it.
// When both children exist, the more extremal child is chosen.
// Returns true if the element moved.
func (q *PriorityQueueSet[T]) down(i int) bool {
	start := i
	n := len(q.heap)
	for {
		l := left(i)
		if l >= n {
			break
		}
		best := l
		if r := l + 1; r < n && q.before(r, l) {
			best = r
		}
		if !q.before(best, i) {
			break
		}
		q.swap(i, best)
		i = best
	}

	return i > start
}
