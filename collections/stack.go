package collections

// Stack is a LIFO collection over a chain of nodes.  The top of the stack
// is the head of the chain.  The zero value is an empty stack.
// Stack is not concurrency-safe.
type Stack[T any] struct {
	head *node[T]
}

// CreateStack returns a new, empty stack
func CreateStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// IsEmpty returns true if the stack has no elements
func (s *Stack[T]) IsEmpty() bool {
	return s.head == nil
}

// Size walks the stack and returns the number of elements.
func (s *Stack[T]) Size() int {
	return chainLength(s.head)
}

// Push adds the value to the top of the stack
func (s *Stack[T]) Push(v T) {
	s.head = &node[T]{value: v, next: s.head}
}

// Pop removes the top value and returns it.  If the stack is empty,
// ErrStackEmpty is returned.
func (s *Stack[T]) Pop() (T, error) {
	if s.head == nil {
		var zero T
		return zero, ErrStackEmpty
	}

	n := s.head
	s.head = n.next
	n.next = nil

	return n.value, nil
}

// Top returns the top value without removing it, or ErrStackEmpty.
func (s *Stack[T]) Top() (T, error) {
	if s.head == nil {
		var zero T
		return zero, ErrStackEmpty
	}
	return s.head.value, nil
}

func (s *Stack[T]) String() string {
	return render("STACK", s.head)
}
