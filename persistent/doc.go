/*
Immutable persistent data structures are data structures which can be copied and modified
efficiently, leaving the original unchanged. Functional programming languages like Lisp have long
relied on using them.
This package is the umbrella for a family of persistent FIFO queues, built after the classic
Okasaki construction: incremental, memoized laziness pays for queue rotations a cell at a time.

Immutable data structures in many cases offer benefits over mutable data structures in terms
of concurrent access and functional reasoning. *Persistent* immutable data-structures offer
structural sharing, which means that if two data structures are mostly copies of each other,
most of the memory they take up will be shared between them. This implies that making copies
of an immutable data structure is relatively cheap in terms of space- and time-complexity.
For the queues in this module, every queue value ever observed stays valid and keeps its
complexity guarantees, no matter which operations are later performed on derived values.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
