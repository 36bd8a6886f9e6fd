package demo

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/object88/linkedlists/collections"
)

func Test_Run_Sections(t *testing.T) {
	tests := []struct {
		name     string
		sections []string
		contains []string
	}{
		{
			name:     "sll",
			sections: []string{"sll"},
			contains: []string{
				"# insert_front example 1\nSLL [A]\nSLL [B -> A]\nSLL [C -> B -> A]\n",
				"Inserted D at index 3 : SLL [B -> C -> A -> D]\n",
				"Inserted E at index -1 : InsertAtIndex: index -1 is out of range for length 4\n",
				"Removed at index 2 : SLL [2 -> 3 -> 5 -> 6]\n",
				"remove(7): false, Length: 9\n SLL [1 -> 2 -> 3 -> 1 -> 2 -> 3 -> 1 -> 2 -> 3]\n",
				"remove(1): true, Length: 0\n SLL []\n",
				"SLL [1 -> 2 -> 3 -> 1 -> 2 -> 2] 2 3 1 0\n",
				"Start: 1 Size: 3 : SLL [2 -> 3 -> 4]\nRemoved at index 0 : SLL [3 -> 4]\nSource: SLL [1 -> 2 -> 3 -> 4 -> 5 -> 6 -> 7 -> 8 -> 9]\n",
				"Start: 2 Size: 3 : SLL [12 -> 13 -> 14]\n",
				"Start: 5 Size: 0 : SLL []\n",
				"Start: 5 Size: 3 : exception occurred.\n",
				"Reversed: SLL [16 -> 15 -> 14 -> 13 -> 12 -> 11 -> 10]\n",
			},
		},
		{
			name:     "stack",
			sections: []string{"stack"},
			contains: []string{
				"STACK [5 -> 4 -> 3 -> 2 -> 1]\n",
				"Exception: Stack is empty\n5\n4\n3\n2\n1\nException: Stack is empty\n",
				"STACK [20 -> 10]\n20\n20\nSTACK [20 -> 10]\n",
			},
		},
		{
			name:     "queue",
			sections: []string{"queue"},
			contains: []string{
				"QUEUE []\nQUEUE [1 -> 2 -> 3 -> 4 -> 5]\n",
				"1\n2\n3\n4\n5\nNo elements in queue Queue is empty\n",
				"No elements in queue Queue is empty\nA\nA\nA\nQUEUE [A -> B -> C -> D]\n",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Run(&buf, tc.sections...); err != nil {
				t.Fatalf("Unexpected error: %s", err.Error())
			}
			for _, s := range tc.contains {
				if !strings.Contains(buf.String(), s) {
					t.Errorf("Output does not contain:\n%s", s)
				}
			}
		})
	}
}

func Test_SliceAndTrim_Errors(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		size     int
		expected string
	}{
		{
			name:     "bad_slice",
			start:    1,
			size:     math.MaxInt,
			expected: fmt.Sprintf("Start: 1 Size: %d : Slice: start 1 with size %d is out of range for length 3\n", math.MaxInt, math.MaxInt),
		},
		{
			name:     "empty_slice",
			start:    2,
			size:     0,
			expected: "Start: 2 Size: 0 : SLL []\nRemoved at index 0 : RemoveAtIndex: index 0 is out of range for length 0\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			ll := collections.CreateLinkedList(1, 2, 3)
			sliceAndTrim(&buf, ll, tc.start, tc.size)
			if buf.String() != tc.expected {
				t.Errorf("Unexpected output:\n%s", buf.String())
			}
			if ll.Length() != 3 {
				t.Errorf("Source changed: %s", ll)
			}
		})
	}
}

func Test_Run_All(t *testing.T) {
	var buf bytes.Buffer
	if err := Run(&buf); err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	out := buf.String()
	sll := strings.Index(out, "# insert_front example 1")
	stack := strings.Index(out, "# push example 1")
	queue := strings.Index(out, "# enqueue example 1")
	if sll == -1 || stack == -1 || queue == -1 {
		t.Fatal("Missing a section")
	}
	if !(sll < stack && stack < queue) {
		t.Error("Sections written out of order")
	}
}

func Test_Run_Unknown(t *testing.T) {
	var buf bytes.Buffer
	if err := Run(&buf, "sll", "deque"); err == nil {
		t.Error("Did not get error for unknown section")
	}
	if buf.Len() != 0 {
		t.Error("Wrote output before rejecting sections")
	}
}
