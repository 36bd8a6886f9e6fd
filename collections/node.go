package collections

import (
	"fmt"
	"strings"
)

// node is the storage unit shared by the linked list, stack, and queue.
// Each node is owned by exactly one predecessor.
type node[T any] struct {
	value T
	next  *node[T]
}

func chainLength[T any](n *node[T]) int {
	length := 0
	for ; n != nil; n = n.next {
		length++
	}
	return length
}

// render writes `label [a -> b -> c]`, starting at n.
func render[T any](label string, n *node[T]) string {
	var sb strings.Builder
	sb.WriteString(label)
	sb.WriteString(" [")
	for ; n != nil; n = n.next {
		sb.WriteString(fmt.Sprint(n.value))
		if n.next != nil {
			sb.WriteString(" -> ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
