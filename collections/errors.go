package collections

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrStackEmpty is returned by stack operations that cannot work on an
// empty stack.
var ErrStackEmpty = errors.New("Stack is empty")

// ErrQueueEmpty is returned by queue operations that cannot work on an
// empty queue.
var ErrQueueEmpty = errors.New("Queue is empty")

// ErrOutOfRange is returned by index-based linked list operations when the
// index or size falls outside the valid range.  The list is not modified.
type ErrOutOfRange struct {
	op     string
	index  int
	size   int
	sized  bool
	length int
}

// NewErrOutOfRange reports an index that is not valid for a list of the
// given length.
func NewErrOutOfRange(op string, index, length int) *ErrOutOfRange {
	return &ErrOutOfRange{op: op, index: index, length: length}
}

// NewErrSliceOutOfRange reports a start and size pair that does not fit
// within a list of the given length.
func NewErrSliceOutOfRange(start, size, length int) *ErrOutOfRange {
	return &ErrOutOfRange{op: "Slice", index: start, size: size, sized: true, length: length}
}

func (e *ErrOutOfRange) Error() string {
	if e.sized {
		return fmt.Sprintf("%s: start %d with size %d is out of range for length %d", e.op, e.index, e.size, e.length)
	}
	return fmt.Sprintf("%s: index %d is out of range for length %d", e.op, e.index, e.length)
}

// Index returns the rejected index, or start index for a slice.
func (e *ErrOutOfRange) Index() int {
	return e.index
}

// IsOutOfRange returns true if the cause of err is an *ErrOutOfRange.
func IsOutOfRange(err error) bool {
	_, ok := errors.Cause(err).(*ErrOutOfRange)
	return ok
}

// IsEmpty returns true if the cause of err is ErrStackEmpty or
// ErrQueueEmpty.
func IsEmpty(err error) bool {
	cause := errors.Cause(err)
	return cause == ErrStackEmpty || cause == ErrQueueEmpty
}
