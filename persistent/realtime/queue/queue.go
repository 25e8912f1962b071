package queue

import (
	"github.com/npillmayer/fq"
	"github.com/npillmayer/fq/maybe"
	"github.com/npillmayer/fq/persistent"
	"github.com/npillmayer/fq/persistent/stream"
)

// Queue is a persistent FIFO queue with worst-case O(1) operations. The
// zero value is an empty queue, ready to use, i.e. this is legal:
//
//	q := queue.Queue[int]{}.Push(7)
//
// Derived queue values share structure with their ancestors; no operation
// ever modifies a queue value another holder observes.
type Queue[T any] struct {
	front    stream.Stream[T] // logical prefix, lazily evaluated, in order
	frontLen int
	rear     *rlist[T] // logical suffix, eager, in reverse order
	rearLen  int
	sched    stream.Stream[T] // unforced suffix of front; |sched| = |front|-|rear|
}

// Queue implements the shared queue contract.
var _ persistent.Fifo[int, Queue[int]] = Queue[int]{}

// Immutable constructs an empty persistent queue.
func Immutable[T any]() Queue[T] {
	return Queue[T]{}
}

// --- API -------------------------------------------------------------------

// IsEmpty is true if q holds no elements.
func (q Queue[T]) IsEmpty() bool {
	return q.frontLen == 0
}

// Len returns the number of elements in q, in O(1).
func (q Queue[T]) Len() int {
	return q.frontLen + q.rearLen
}

// Front returns the front element without removing it, or Nothing for an
// empty queue.
func (q Queue[T]) Front() maybe.Maybe[T] {
	if q.frontLen == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(q.front.Head())
}

// Push returns a queue with value appended at the back.
func (q Queue[T]) Push(value T) Queue[T] {
	return makeQueue(q.front, q.frontLen, q.rear.cons(value), q.rearLen+1, q.sched)
}

// PushFront returns a queue with value prepended at the front, jumping the
// line. The new cell is born forced and is consed onto front and schedule
// alike, keeping the schedule in step without adding debt.
func (q Queue[T]) PushFront(value T) Queue[T] {
	return Queue[T]{
		front:    stream.Cons(value, fq.Const(q.front)),
		frontLen: q.frontLen + 1,
		rear:     q.rear,
		rearLen:  q.rearLen,
		sched:    stream.Cons(value, fq.Const(q.sched)),
	}
}

// PushAll returns a queue with all values appended at the back, in the
// given order. It is equivalent to folding Push over values.
func (q Queue[T]) PushAll(values ...T) Queue[T] {
	for _, value := range values {
		q = q.Push(value)
	}
	return q
}

// Pop removes the front element, returning it together with the remaining
// queue. Popping an empty queue returns persistent.ErrEmptyQueue and the
// queue unchanged.
func (q Queue[T]) Pop() (T, Queue[T], error) {
	if q.frontLen == 0 {
		var none T
		return none, q, persistent.ErrEmptyQueue
	}
	head := q.front.Head()
	return head, makeQueue(q.front.Tail(), q.frontLen-1, q.rear, q.rearLen, q.sched), nil
}

// Slice returns the elements of q, front to back, as a fresh slice.
// q itself is unaffected, apart from pending lazy cells getting forced.
func (q Queue[T]) Slice() []T {
	values := make([]T, 0, q.Len())
	values = append(values, q.front.Slice()...)
	return q.rear.appendReversed(values)
}
