package hdlsim

import (
	"testing"
	"testing/quick"
)

// drain pops every node off q and returns their absolute delay from the
// queue's original now (reconstructed by re-accumulating deltaToPrev).
func drain(q *deltaQueue) []Time {
	var out []Time
	var acc Time
	for !q.empty() {
		n := q.pop()
		acc += n.deltaToPrev
		out = append(out, acc)
		q.release(n)
	}
	return out
}

func TestDeltaQueueOrdersByDelay(t *testing.T) {
	var q deltaQueue
	q.insertWake(0, 30, &process{name: "p1"})
	q.insertWake(0, 10, &process{name: "p2"})
	q.insertWake(0, 20, &process{name: "p3"})

	got := drain(&q)
	want := []Time{10, 20, 30}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestDeltaQueueStableForEqualDelay(t *testing.T) {
	var q deltaQueue
	p1 := &process{name: "first"}
	p2 := &process{name: "second"}
	q.insertWake(0, 5, p1)
	q.insertWake(0, 5, p2)

	n1 := q.pop()
	if n1.proc != p1 {
		t.Fatal("equal-delay nodes must preserve insertion order")
	}
	q.release(n1)
	n2 := q.pop()
	if n2.proc != p2 {
		t.Fatal("equal-delay nodes must preserve insertion order")
	}
}

func TestDeltaQueueZeroDelayNextIteration(t *testing.T) {
	var q deltaQueue
	q.insertWake(3, 0, &process{name: "p"})
	n := q.pop()
	if n.iteration != 4 {
		t.Fatalf("iteration = %d, want curIteration+1 = 4", n.iteration)
	}
	if n.deltaToPrev != 0 {
		t.Fatalf("deltaToPrev = %d, want 0", n.deltaToPrev)
	}
}

func TestDeltaQueueNonZeroDelayIterationZero(t *testing.T) {
	var q deltaQueue
	q.insertWake(3, 100, &process{name: "p"})
	n := q.pop()
	if n.iteration != 0 {
		t.Fatalf("iteration = %d, want 0 for a non-zero-delay node", n.iteration)
	}
}

func TestDeltaQueueReleaseReusesNodes(t *testing.T) {
	var q deltaQueue
	n := q.alloc()
	q.release(n)
	n2 := q.alloc()
	if n2 != n {
		t.Fatal("alloc after release should recycle the freed node")
	}
	if n2.proc != nil || n2.sig != nil {
		t.Fatal("recycled node must be zeroed")
	}
}

// TestDeltaQueueInsertionOrderInvariant checks, for arbitrary delay
// sequences, that popping the queue always yields non-decreasing absolute
// delays — invariant I1 (monotone time ordering).
func TestDeltaQueueInsertionOrderInvariant(t *testing.T) {
	f := func(delays []uint16) bool {
		var q deltaQueue
		for _, d := range delays {
			q.insertWake(0, Time(d), &process{})
		}
		got := drain(&q)
		for i := 1; i < len(got); i++ {
			if got[i] < got[i-1] {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
