package stream

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/npillmayer/fq"
)

// Stream is an immutable sequence whose rest is a deferred computation,
// evaluated at most once. The zero value is the empty stream:
//
//	var s stream.Stream[int]         // empty
//	s = stream.Cons(7, fq.Const(s))  // ⟨7⟩
//
// Stream values are cheap to copy; they share their cells by reference.
type Stream[T any] struct {
	cell *cell[T]
}

// cell is a single sequence node. Exactly one of susp/tail is meaningful
// at any time: susp until the first force, tail afterwards. once guards
// the transition, so concurrent forcing evaluates susp exactly once.
type cell[T any] struct {
	head T
	once sync.Once
	susp func() Stream[T]
	tail Stream[T]
}

// Empty returns the empty stream, the terminal value of every finite stream.
func Empty[T any]() Stream[T] {
	return Stream[T]{}
}

// Cons builds a new stream cell in front of a deferred rest. The suspension
// is not evaluated; it will run at most once, on the first Tail call.
func Cons[T any](head T, tail func() Stream[T]) Stream[T] {
	return Stream[T]{cell: &cell[T]{head: head, susp: tail}}
}

// From builds a fully evaluated stream holding the given values in order.
func From[T any](values ...T) Stream[T] {
	s := Empty[T]()
	for i := len(values) - 1; i >= 0; i-- {
		s = Cons(values[i], fq.Const(s))
	}
	return s
}

// IsEmpty is true for the terminal stream value.
func (s Stream[T]) IsEmpty() bool {
	return s.cell == nil
}

// Head returns the first element. Heads are strict, so no computation is
// triggered. Calling Head on an empty stream is a programming defect and
// panics.
func (s Stream[T]) Head() T {
	assertThat(s.cell != nil, "attempt to take head of empty stream")
	return s.cell.head
}

// Tail returns the rest of the stream, forcing the deferred computation on
// first call and caching the result. Subsequent calls — through any stream
// value sharing the cell, from any goroutine — return the cached stream
// without recomputation. Calling Tail on an empty stream panics.
func (s Stream[T]) Tail() Stream[T] {
	assertThat(s.cell != nil, "attempt to take tail of empty stream")
	s.cell.once.Do(func() {
		tracer().Debugf("forcing suspended stream tail")
		s.cell.tail = s.cell.susp()
		s.cell.susp = nil
		atomic.AddUint64(&forcedCells, 1)
	})
	return s.cell.tail
}

// Slice walks the stream to its end, forcing every cell, and returns the
// elements as a fresh slice.
func (s Stream[T]) Slice() []T {
	var values []T
	for !s.IsEmpty() {
		values = append(values, s.Head())
		s = s.Tail()
	}
	return values
}

// --- Instrumentation ---------------------------------------------------------

// forcedCells counts suspensions actually executed, process-wide.
var forcedCells uint64

// ForcedCells returns the total number of deferred stream tails which have
// been evaluated so far, process-wide. Deltas of this counter measure how
// much suspended work an operation on a lazy structure really triggers.
func ForcedCells() uint64 {
	return atomic.LoadUint64(&forcedCells)
}

// --- Helpers -----------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("stream: "+msg, msgargs...)
		panic(msg)
	}
}
