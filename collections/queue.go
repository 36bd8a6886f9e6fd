package collections

// Queue is a FIFO collection over a chain of nodes, tracking both ends so
// that enqueue does not need to walk the chain.  The zero value is an empty
// queue.
// Queue is not concurrency-safe.
type Queue[T any] struct {
	head *node[T]
	tail *node[T]
}

// CreateQueue returns a new, empty queue
func CreateQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// IsEmpty returns true if the queue has no elements
func (q *Queue[T]) IsEmpty() bool {
	return q.head == nil
}

// Size walks the queue and returns the number of elements.
func (q *Queue[T]) Size() int {
	return chainLength(q.head)
}

// Enqueue adds the value to the back of the queue
func (q *Queue[T]) Enqueue(v T) {
	n := &node[T]{value: v}
	if q.head == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
}

// Dequeue removes the front value and returns it.  If the queue is empty,
// ErrQueueEmpty is returned.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.head == nil {
		var zero T
		return zero, ErrQueueEmpty
	}

	n := q.head
	q.head = n.next
	n.next = nil

	// Tail must not outlive the chain, or the next enqueue would link onto
	// an unreachable node.
	if q.head == nil {
		q.tail = nil
	}

	return n.value, nil
}

// Front returns the front value without removing it, or ErrQueueEmpty.
func (q *Queue[T]) Front() (T, error) {
	if q.head == nil {
		var zero T
		return zero, ErrQueueEmpty
	}
	return q.head.value, nil
}

func (q *Queue[T]) String() string {
	return render("QUEUE", q.head)
}
