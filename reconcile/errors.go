package reconcile

import "errors"

var (
	ErrRunPositionOrder    = errors.New("reconcile: run does not start at a strictly greater position than the previous run")
	ErrRunLengthExhausted  = errors.New("reconcile: run length table claims a zero length run while still inside data")
	ErrRunPositionMismatch = errors.New("reconcile: item inside a run does not share the run position")
	ErrDedupValueMismatch  = errors.New("reconcile: deduplicated value does not match the closing item of its run")
	ErrRunCounterOrder     = errors.New("reconcile: items within a run are not strictly counter increasing")
	ErrDedupLengthMismatch = errors.New("reconcile: number of closed runs does not match the deduplicated array length")
	ErrPaddingInvalid      = errors.New("reconcile: empty padding is not a contiguous suffix")
)

var (
	ErrCapacityMismatch = errors.New("reconcile: arrays do not share the same capacity")
	ErrDuplicateCounter = errors.New("reconcile: two records for the same position share a counter")
)
