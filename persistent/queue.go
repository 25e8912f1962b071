package persistent

import (
	"errors"

	"github.com/npillmayer/fq/maybe"
)

// ErrEmptyQueue is returned by Pop on an empty queue. It flags a perfectly
// recoverable condition, not a defect.
var ErrEmptyQueue = errors.New("queue is empty")

// Fifo is the contract shared by the persistent queue implementations of
// this module. Q is the implementing type itself: operations never modify
// a queue value but return a fresh one.
//
// All implementations guarantee:
//   - IsEmpty, Len, Front, Push, PushFront and PushAll never fail;
//   - Pop returns ErrEmptyQueue (and the unchanged queue) on an empty queue;
//   - Slice returns a fresh front-to-back copy, leaving the queue untouched.
type Fifo[T any, Q any] interface {
	IsEmpty() bool
	Len() int
	Front() maybe.Maybe[T]
	Push(value T) Q
	PushFront(value T) Q
	PushAll(values ...T) Q
	Pop() (T, Q, error)
	Slice() []T
}
