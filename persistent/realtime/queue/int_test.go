package queue

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/fq/persistent/stream"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// test internals

func TestInternalScheduleKeepsStep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.queue")
	defer teardown()
	//
	rng := rand.New(rand.NewSource(1))
	q := Immutable[int]()
	for i := 0; i < 500; i++ {
		switch {
		case rng.Intn(3) == 0 && !q.IsEmpty():
			_, rest, err := q.Pop()
			if err != nil {
				t.Fatalf("expected Pop to succeed, returned %v", err)
			}
			q = rest
		case rng.Intn(7) == 0:
			q = q.PushFront(i)
		default:
			q = q.Push(i)
		}
		if q.frontLen < q.rearLen {
			t.Fatalf("step %d: balance violated: %s", i, printQueue(q))
		}
		if q.frontLen == 0 && q.rearLen != 0 {
			t.Fatalf("step %d: emptiness is front-length zero, got %s", i, printQueue(q))
		}
		if sl := schedLen(q.sched); sl != q.frontLen-q.rearLen {
			t.Fatalf("step %d: expected |sched| = %d, is %d", i, q.frontLen-q.rearLen, sl)
		}
	}
}

func TestInternalRotationTrigger(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.queue")
	defer teardown()
	//
	q := Immutable[int]().Push(1) // first push always rotates
	if q.rearLen != 0 || q.frontLen != 1 {
		t.Errorf("expected first push to rotate into the front, got %s", printQueue(q))
	}
	q = q.Push(2) // balanced: schedule advances, rear keeps the element
	if q.rearLen != 1 {
		t.Errorf("expected second push to stay in the rear, got %s", printQueue(q))
	}
	q = q.Push(3) // rear would exceed front: rotate
	if q.rearLen != 0 || q.frontLen != 3 {
		t.Errorf("expected third push to rotate, got %s", printQueue(q))
	}
}

func TestInternalScheduleSharesFrontCells(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.queue")
	defer teardown()
	//
	q := Immutable[int]().PushAll(1, 2, 3, 4, 5, 6, 7)
	// Walk the schedule to its end, then walking the front must not
	// force anything beyond cells the schedule never covered.
	for s := q.sched; !s.IsEmpty(); s = s.Tail() {
	}
	before := stream.ForcedCells()
	q.front.Slice()
	if forced := stream.ForcedCells() - before; forced != 0 {
		t.Errorf("expected front to be fully forced through the schedule, forced %d more cells", forced)
	}
}

func TestInternalRotateOutOfStep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.queue")
	defer teardown()
	//
	defer func() {
		if recover() == nil {
			t.Error("expected out-of-step rotation to panic, didn't")
		}
	}()
	var rear *rlist[int]
	// the length mismatch surfaces once the rotation is forced
	rotate(stream.From(1, 2), rear.cons(3), stream.Empty[int]()).Slice()
}

// ---------------------------------------------------------------------------

// schedLen walks (and thereby forces) the schedule.
func schedLen[T any](s stream.Stream[T]) int {
	n := 0
	for ; !s.IsEmpty(); s = s.Tail() {
		n++
	}
	return n
}
