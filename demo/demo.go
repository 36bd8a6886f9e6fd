// Package demo walks through the linked list, stack, and queue with a fixed
// set of examples, writing each step's result.
package demo

import (
	"fmt"
	"io"
	"sort"

	"github.com/object88/linkedlists/collections"
	"github.com/pkg/errors"
)

type section func(w io.Writer)

var sections = map[string]section{
	"sll":   linkedListExamples,
	"stack": stackExamples,
	"queue": queueExamples,
}

var order = []string{"sll", "stack", "queue"}

// Names returns the names of the available sections, sorted.
func Names() []string {
	names := make([]string, 0, len(sections))
	for k := range sections {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Run writes the named sections to w.  If no names are provided, every
// section is written.
func Run(w io.Writer, names ...string) error {
	if len(names) == 0 {
		names = order
	}

	for _, name := range names {
		if _, ok := sections[name]; !ok {
			return errors.Errorf("Unknown demo section '%s'; expected one of %v", name, Names())
		}
	}

	for _, name := range names {
		sections[name](w)
	}
	return nil
}

func header(w io.Writer, name string) {
	fmt.Fprintf(w, "\n# %s\n", name)
}

func linkedListExamples(w io.Writer) {
	header(w, "insert_front example 1")
	letters := collections.CreateLinkedList[string]()
	for _, v := range []string{"A", "B", "C"} {
		letters.InsertFront(v)
		fmt.Fprintln(w, letters)
	}

	header(w, "insert_back example 1")
	letters = collections.CreateLinkedList[string]()
	for _, v := range []string{"C", "B", "A"} {
		letters.InsertBack(v)
		fmt.Fprintln(w, letters)
	}

	header(w, "insert_at_index example 1")
	letters = collections.CreateLinkedList[string]()
	inserts := []struct {
		index int
		value string
	}{{0, "A"}, {0, "B"}, {1, "C"}, {3, "D"}, {-1, "E"}, {5, "F"}}
	for _, in := range inserts {
		fmt.Fprintf(w, "Inserted %s at index %d : ", in.value, in.index)
		if err := letters.InsertAtIndex(in.index, in.value); err != nil {
			fmt.Fprintln(w, err)
			continue
		}
		fmt.Fprintln(w, letters)
	}

	header(w, "remove_at_index example 1")
	numbers := collections.CreateLinkedList(1, 2, 3, 4, 5, 6)
	fmt.Fprintf(w, "Initial LinkedList : %s\n", numbers)
	for _, index := range []int{0, 2, 0, 2, 2, -2} {
		fmt.Fprintf(w, "Removed at index %d : ", index)
		if err := numbers.RemoveAtIndex(index); err != nil {
			fmt.Fprintln(w, err)
			continue
		}
		fmt.Fprintln(w, numbers)
	}

	for n, removals := range [][]int{{7, 3, 3, 3, 3}, {1, 2, 3, 1, 2, 3, 3, 2, 1}} {
		header(w, fmt.Sprintf("remove example %d", n+1))
		numbers = collections.CreateLinkedList(1, 2, 3, 1, 2, 3, 1, 2, 3)
		fmt.Fprintf(w, "Initial LinkedList, Length: %d\n  %s\n", numbers.Length(), numbers)
		for _, v := range removals {
			removed := numbers.Remove(v)
			fmt.Fprintf(w, "remove(%d): %t, Length: %d\n %s\n", v, removed, numbers.Length(), numbers)
		}
	}

	header(w, "count example 1")
	numbers = collections.CreateLinkedList(1, 2, 3, 1, 2, 2)
	fmt.Fprintln(w, numbers, numbers.Count(1), numbers.Count(2), numbers.Count(3), numbers.Count(4))

	header(w, "find example 1")
	names := collections.CreateLinkedList("Waldo", "Clark Kent", "Homer", "Santa Claus")
	fmt.Fprintln(w, names)
	for _, v := range []string{"Waldo", "Superman", "Santa Claus"} {
		fmt.Fprintln(w, names.Find(v))
	}

	header(w, "slice example 1")
	numbers = collections.CreateLinkedList(1, 2, 3, 4, 5, 6, 7, 8, 9)
	fmt.Fprintln(w, "Source:", numbers)
	sliceAndTrim(w, numbers, 1, 3)

	header(w, "slice example 2")
	numbers = collections.CreateLinkedList(10, 11, 12, 13, 14, 15, 16)
	fmt.Fprintln(w, "Source:", numbers)
	slices := [][2]int{{0, 7}, {-1, 7}, {0, 8}, {2, 3}, {5, 0}, {5, 3}, {6, 1}}
	for _, sl := range slices {
		fmt.Fprintf(w, "Start: %d Size: %d", sl[0], sl[1])
		s, err := numbers.Slice(sl[0], sl[1])
		if err != nil {
			fmt.Fprintln(w, " : exception occurred.")
			continue
		}
		fmt.Fprintln(w, " :", s)
	}

	header(w, "reverse example 1")
	numbers = collections.CreateLinkedList(10, 11, 12, 13, 14, 15, 16)
	fmt.Fprintln(w, "Source:", numbers)
	numbers.Reverse()
	fmt.Fprintln(w, "Reversed:", numbers)
}

// sliceAndTrim slices ll, then removes the first element of the slice to
// show that the source is unaffected.
func sliceAndTrim(w io.Writer, ll *collections.LinkedList[int], start, size int) {
	s, err := ll.Slice(start, size)
	if err != nil {
		fmt.Fprintf(w, "Start: %d Size: %d : %s\n", start, size, err)
		return
	}
	fmt.Fprintf(w, "Start: %d Size: %d : %s\n", start, size, s)

	if err := s.RemoveAtIndex(0); err != nil {
		fmt.Fprintln(w, "Removed at index 0 :", err)
		return
	}
	fmt.Fprintln(w, "Removed at index 0 :", s)
	fmt.Fprintln(w, "Source:", ll)
}

func stackExamples(w io.Writer) {
	header(w, "push example 1")
	s := collections.CreateStack[int]()
	fmt.Fprintln(w, s)
	for _, v := range []int{1, 2, 3, 4, 5} {
		s.Push(v)
	}
	fmt.Fprintln(w, s)

	header(w, "pop example 1")
	s = collections.CreateStack[int]()
	if _, err := s.Pop(); err != nil {
		fmt.Fprintln(w, "Exception:", err)
	}
	for _, v := range []int{1, 2, 3, 4, 5} {
		s.Push(v)
	}
	for i := 0; i < 6; i++ {
		v, err := s.Pop()
		if err != nil {
			fmt.Fprintln(w, "Exception:", err)
			continue
		}
		fmt.Fprintln(w, v)
	}

	header(w, "top example 1")
	s = collections.CreateStack[int]()
	if _, err := s.Top(); err != nil {
		fmt.Fprintln(w, "No elements in stack", err)
	}
	s.Push(10)
	s.Push(20)
	fmt.Fprintln(w, s)
	for i := 0; i < 2; i++ {
		v, _ := s.Top()
		fmt.Fprintln(w, v)
	}
	fmt.Fprintln(w, s)
}

func queueExamples(w io.Writer) {
	header(w, "enqueue example 1")
	q := collections.CreateQueue[int]()
	fmt.Fprintln(w, q)
	for _, v := range []int{1, 2, 3, 4, 5} {
		q.Enqueue(v)
	}
	fmt.Fprintln(w, q)

	header(w, "dequeue example 1")
	q = collections.CreateQueue[int]()
	for _, v := range []int{1, 2, 3, 4, 5} {
		q.Enqueue(v)
	}
	fmt.Fprintln(w, q)
	for i := 0; i < 6; i++ {
		v, err := q.Dequeue()
		if err != nil {
			fmt.Fprintln(w, "No elements in queue", err)
			continue
		}
		fmt.Fprintln(w, v)
	}

	header(w, "front example 1")
	letters := collections.CreateQueue[string]()
	fmt.Fprintln(w, letters)
	for _, v := range []string{"A", "B", "C", "D"} {
		if f, err := letters.Front(); err != nil {
			fmt.Fprintln(w, "No elements in queue", err)
		} else {
			fmt.Fprintln(w, f)
		}
		letters.Enqueue(v)
	}
	fmt.Fprintln(w, letters)
}
