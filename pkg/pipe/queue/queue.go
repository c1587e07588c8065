package queue

// compactAt is the number of consumed slots after which Pop moves the live
// items back to the start of the backing array.
const compactAt = 64

// Queue is a FIFO buffer. The zero value is an empty queue ready to use.
// A Queue is not safe for concurrent use.
type Queue[T any] struct {
	items []T
	head  int
}

func New[T any](values ...T) *Queue[T] {
	q := &Queue[T]{}
	q.Push(values...)
	return q
}

// Push appends values at the tail.
func (q *Queue[T]) Push(values ...T) {
	q.items = append(q.items, values...)
}

// Pop removes and returns the head. ok is false when the queue is empty.
func (q *Queue[T]) Pop() (v T, ok bool) {
	if q.head == len(q.items) {
		return v, false
	}

	var zero T
	v = q.items[q.head]
	q.items[q.head] = zero
	q.head++

	switch {
	case q.head == len(q.items):
		q.items = q.items[:0]
		q.head = 0
	case q.head >= compactAt && q.head*2 >= len(q.items):
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return v, true
}

// Peek returns the head without removing it.
func (q *Queue[T]) Peek() (v T, ok bool) {
	if q.head == len(q.items) {
		return v, false
	}
	return q.items[q.head], true
}

func (q *Queue[T]) Len() int {
	return len(q.items) - q.head
}

// Reset drops every buffered value.
func (q *Queue[T]) Reset() {
	clear(q.items)
	q.items = q.items[:0]
	q.head = 0
}
