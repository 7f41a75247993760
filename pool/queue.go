package pool

// queue is a growable FIFO ring buffer. It does not provide thread-safety. Concurrent
// access may lead to UB
type queue[T any] struct {
	items []T
	head  int
	n     int
}

func newQueue[T any](prealloc int) queue[T] {
	return queue[T]{
		items: make([]T, prealloc),
	}
}

func (q *queue[T]) Len() int {
	return q.n
}

func (q *queue[T]) Push(item T) {
	if q.n == len(q.items) {
		q.grow()
	}

	q.items[(q.head+q.n)%len(q.items)] = item
	q.n++
}

// Pop removes the oldest item. Must not be called on an empty queue.
func (q *queue[T]) Pop() (item T) {
	var zero T

	item = q.items[q.head]
	// don't keep references to already consumed items
	q.items[q.head] = zero
	q.head = (q.head + 1) % len(q.items)
	q.n--

	return item
}

func (q *queue[T]) grow() {
	items := make([]T, max(2*len(q.items), 8))
	for i := range q.n {
		items[i] = q.items[(q.head+i)%len(q.items)]
	}

	q.items = items
	q.head = 0
}
