// Package circuit expresses the reconciliation checks as gnark constraints.
//
// The structure of every gadget here depends only on the array capacity. The
// logical length of an array is derived in-circuit from its empty padding and
// turned into a prefix mask, and each assertion is multiplied by the mask of
// the slot it belongs to instead of being skipped. Indexing by a witness value
// (the deduplicated cursor) is a linear scan through std/selector.
//
// The Order-Hint Combiner is a solver hint. Its outputs are unconstrained
// variables, whoever consumes them must check them against the source arrays.
package circuit
