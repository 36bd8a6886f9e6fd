package collections

// LinkedList is a singly-linked list with a sentinel head.  Index 0 is the
// front of the list.  The length is not cached; every call to Length walks
// the chain.
// LinkedList is not concurrency-safe.
type LinkedList[T comparable] struct {
	sentinel *node[T]
}

// CreateLinkedList returns a new linked list populated with the provided
// values, in order.
func CreateLinkedList[T comparable](values ...T) *LinkedList[T] {
	ll := &LinkedList[T]{sentinel: &node[T]{}}

	last := ll.sentinel
	for _, v := range values {
		last.next = &node[T]{value: v}
		last = last.next
	}

	return ll
}

// Length returns the number of elements in the linked list
func (ll *LinkedList[T]) Length() int {
	return chainLength(ll.sentinel.next)
}

// IsEmpty returns true if there are no elements in the linked list
func (ll *LinkedList[T]) IsEmpty() bool {
	return ll.sentinel.next == nil
}

// InsertFront adds the value at index 0.
func (ll *LinkedList[T]) InsertFront(v T) {
	ll.sentinel.next = &node[T]{value: v, next: ll.sentinel.next}
}

// InsertBack walks to the end of the list and appends the value.
func (ll *LinkedList[T]) InsertBack(v T) {
	n := ll.sentinel
	for n.next != nil {
		n = n.next
	}
	n.next = &node[T]{value: v}
}

// InsertAtIndex adds the value so that it is found at the given index.  An
// index equal to the length appends.  Any index outside of `[0, length]`
// returns an *ErrOutOfRange and the list is not changed.
func (ll *LinkedList[T]) InsertAtIndex(index int, v T) error {
	length := ll.Length()
	if index < 0 || index > length {
		return NewErrOutOfRange("InsertAtIndex", index, length)
	}

	prev := ll.before(index)
	prev.next = &node[T]{value: v, next: prev.next}
	return nil
}

// RemoveAtIndex drops the element at the given index.  Any index outside of
// `[0, length-1]` returns an *ErrOutOfRange and the list is not changed.
func (ll *LinkedList[T]) RemoveAtIndex(index int) error {
	length := ll.Length()
	if index < 0 || index > length-1 {
		return NewErrOutOfRange("RemoveAtIndex", index, length)
	}

	ll.unlink(ll.before(index))
	return nil
}

// Remove drops the first element equal to v, and returns whether anything
// was removed.
func (ll *LinkedList[T]) Remove(v T) bool {
	for prev := ll.sentinel; prev.next != nil; prev = prev.next {
		if prev.next.value == v {
			ll.unlink(prev)
			return true
		}
	}
	return false
}

// Count returns the number of elements equal to v
func (ll *LinkedList[T]) Count(v T) int {
	c := 0
	for n := ll.sentinel.next; n != nil; n = n.next {
		if n.value == v {
			c++
		}
	}
	return c
}

// Find returns true if any element is equal to v
func (ll *LinkedList[T]) Find(v T) bool {
	for n := ll.sentinel.next; n != nil; n = n.next {
		if n.value == v {
			return true
		}
	}
	return false
}

// Slice returns a new linked list holding copies of `size` consecutive
// values, beginning at `start`.  The start must be a valid element index
// (so slicing an empty list always fails), and the run must not extend past
// the end of the list.  A size of 0 with a valid start returns an empty
// list.  The new list shares no nodes with the source.
func (ll *LinkedList[T]) Slice(start, size int) (*LinkedList[T], error) {
	length := ll.Length()
	if start < 0 || start > length-1 || size < 0 || size > length-start {
		return nil, NewErrSliceOutOfRange(start, size, length)
	}

	out := CreateLinkedList[T]()
	last := out.sentinel
	src := ll.before(start).next
	for i := 0; i < size; i++ {
		last.next = &node[T]{value: src.value}
		last = last.next
		src = src.next
	}

	return out, nil
}

// Reverse flips the direction of every link in place.
func (ll *LinkedList[T]) Reverse() {
	var prev *node[T]
	current := ll.sentinel.next
	for current != nil {
		next := current.next
		current.next = prev
		prev = current
		current = next
	}
	ll.sentinel.next = prev
}

// Values returns a copy of the elements, front to back.
func (ll *LinkedList[T]) Values() []T {
	values := []T{}
	for n := ll.sentinel.next; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// Walk calls fn for each element, front to back, until fn returns false.
func (ll *LinkedList[T]) Walk(fn func(index int, v T) bool) {
	i := 0
	for n := ll.sentinel.next; n != nil; n = n.next {
		if !fn(i, n.value) {
			return
		}
		i++
	}
}

func (ll *LinkedList[T]) String() string {
	return render("SLL", ll.sentinel.next)
}

// before returns the node preceding the given index; the sentinel for 0.
// The caller has already validated the index.
func (ll *LinkedList[T]) before(index int) *node[T] {
	n := ll.sentinel
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n
}

func (ll *LinkedList[T]) unlink(prev *node[T]) {
	victim := prev.next
	prev.next = victim.next
	victim.next = nil
}
