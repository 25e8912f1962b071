/*
Package queue implements a persistent (immutable) FIFO queue.

A persistent queue has copy-on-write behaviour: each “modification” (push,
pop) produces a new queue value, leaving the original unmodified and as
cheap to use as before. Under the hood the queue keeps a lazy front stream
and a reversed rear list; whenever the rear would outgrow the front, the
two are merged into a fresh lazy front by an incremental rotation, paid
for one cell at a time as later pops force it.

Operations run in amortized O(1); a single operation may take up to
O(log n) when nested pending rotations stack up. For a worst-case O(1)
variant see the sibling package persistent/realtime/queue.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package queue

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.queue'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.queue")
}
