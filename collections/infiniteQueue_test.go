package collections

import (
	"testing"
	"time"
)

func Test_InfiniteQueue_Order(t *testing.T) {
	iq := CreateInfiniteQueue()

	for i := 0; i < 100; i++ {
		iq.In() <- i
	}
	iq.Close()

	expected := 0
	for v := range iq.Out() {
		if v.(int) != expected {
			t.Errorf("Bad value; expected %d, got %d", expected, v)
		}
		expected++
	}

	if expected != 100 {
		t.Errorf("Drained %d values", expected)
	}
}

func Test_InfiniteQueue_Len(t *testing.T) {
	iq := CreateInfiniteQueue()
	defer iq.Close()

	if l := iq.Len(); l != 0 {
		t.Errorf("Initial length is non-zero: %d", l)
	}

	for i := 0; i < 3; i++ {
		iq.In() <- i
	}
	if l := iq.Len(); l != 3 {
		t.Errorf("Incorrect length %d", l)
	}

	select {
	case v := <-iq.Out():
		if v.(int) != 0 {
			t.Errorf("Got wrong item %d", v)
		}
	case <-time.After(50 * time.Millisecond):
		t.Fatal("Timed out reading")
	}

	if l := iq.Len(); l != 2 {
		t.Errorf("Incorrect length %d", l)
	}
}
