package persistent

// RandomAccessList is the consumer-facing contract for persistent list
// structures offering positional access, e.g. a skew-binary random-access
// list. This module specifies the boundary only and ships no
// implementation; unlike the queues, such a structure needs no laziness,
// merely binary-counter bookkeeping.
//
// L is the implementing type itself, as with Fifo.
type RandomAccessList[T any, L any] interface {
	IsEmpty() bool
	Len() int
	Cons(value T) L
	Head() (T, error)
	Tail() (L, error)
	Get(i int) (T, error)
	Set(i int, value T) (L, error)
}
