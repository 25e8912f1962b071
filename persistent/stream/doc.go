/*
Package stream implements an immutable, lazily evaluated sequence type.

A stream cell holds a head value and a deferred computation for the rest
of the sequence. The deferred tail is forced at most once: the first call
to Tail runs the suspension and caches its result, and every holder of the
cell — streams are shared structurally, never copied — observes the same
forced value from then on. This exactly-once memoization is what lets the
queue packages of this module turn amortized bounds into worst-case ones.

Streams are persistent: cells are never mutated after construction, apart
from the once-initialized tail slot, and a cell stays alive for as long as
any stream value references it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stream

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.stream'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.stream")
}
