package queue

import (
	"fmt"

	"github.com/npillmayer/fq"
	"github.com/npillmayer/fq/persistent/stream"
)

// --- Rear list ---------------------------------------------------------------

// rlist is an immutable cons list, holding the rear of a queue in reverse
// logical order. Consing is O(1) and shares the rest of the list across
// queue values. A nil *rlist is the empty list.
type rlist[T any] struct {
	head T
	tail *rlist[T]
}

func (l *rlist[T]) cons(value T) *rlist[T] {
	return &rlist[T]{head: value, tail: l}
}

// appendReversed appends the elements of l to values in reverse list
// order, i.e. in logical queue order.
func (l *rlist[T]) appendReversed(values []T) []T {
	at := len(values)
	for ; l != nil; l = l.tail {
		values = append(values, l.head)
	}
	for i, j := at, len(values)-1; i < j; i, j = i+1, j-1 {
		values[i], values[j] = values[j], values[i]
	}
	return values
}

// --- Balancing ---------------------------------------------------------------

// makeQueue restores the balance invariant |front| ≥ |rear|. Operations
// grow the rear by at most one element, so an unbalanced queue always has
// rearLen == frontLen+1 and is rebuilt by a single rotation.
func makeQueue[T any](front stream.Stream[T], frontLen int, rear *rlist[T], rearLen int) Queue[T] {
	if rearLen <= frontLen {
		return Queue[T]{front: front, frontLen: frontLen, rear: rear, rearLen: rearLen}
	}
	assertThat(rearLen == frontLen+1, "queue out of balance: |rear|=%d exceeds |front|=%d by more than one", rearLen, frontLen)
	tracer().Debugf("rotating queue: |front|=%d, |rear|=%d", frontLen, rearLen)
	return Queue[T]{front: rotate(front, rear, stream.Empty[T]()), frontLen: frontLen + rearLen}
}

// rotate incrementally rebuilds front ++ reverse(rear) ++ acc as a lazy
// stream: each forced cell consumes one element of front and moves one
// element of rear into the accumulator, until front is exhausted and the
// last rear element caps the stream. Requires |rear| == |front|+1, checked
// one step at a time.
func rotate[T any](front stream.Stream[T], rear *rlist[T], acc stream.Stream[T]) stream.Stream[T] {
	assertThat(rear != nil, "rotation out of step: rear ran out of elements")
	if front.IsEmpty() {
		assertThat(rear.tail == nil, "rotation out of step: rear holds more than one surplus element")
		return stream.Cons(rear.head, fq.Const(acc))
	}
	head, rearHead, rearTail := front.Head(), rear.head, rear.tail
	return stream.Cons(head, func() stream.Stream[T] {
		return rotate(front.Tail(), rearTail, stream.Cons(rearHead, fq.Const(acc)))
	})
}

// --- Helpers -----------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("queue: "+msg, msgargs...)
		panic(msg)
	}
}
