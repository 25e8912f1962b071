/*
Package queue implements a persistent FIFO queue with worst-case O(1)
operations.

It refines the amortized queue of package persistent/queue with an
explicit schedule: a reference into the not-yet-forced suffix of the lazy
front stream. Every operation advances the schedule by one cell, forcing
one outstanding step of the pending rotation. The deferred work of a
rotation is therefore fully paid off before the queue can possibly need
another one, and no operation ever stalls on a pile of unevaluated cells —
the amortized bound becomes a worst-case bound, at the cost of one extra
forced cell of bookkeeping per call.

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
