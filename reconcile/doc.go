package reconcile

/*

# Reconciling side-effect arrays without data dependent control flow

This package provides the native reference implementation of two checks used
when certifying side-effect records (state reads and writes tagged with an
execution counter and, for storage writes, a storage position):

1. The Order-Hint Combiner, which lays out two counter sorted arrays as a
   single combined order hint.
2. The Dedup-Run Verifier, which checks that a claimed deduplicated array is
   exactly the "keep the last write per position" collapse of a position
   sorted array.

The same algorithms are expressed as constraints in the circuit package. The
implementations here follow the constraint form closely so that the two can be
compared slot for slot.

## Fixed capacity arrays

Every array has a fixed capacity N. The first items are real records, the
remainder is padded with the record type's empty value:

	[r0, r1, r2, e, e, e, e, e]
	 |--------|  |-----------|
	 length 3    padding

ValidateArray and ArrayLength are the trusted primitives that establish this
shape. Nothing else in the package re-checks padding.

## Witness and verify

WitnessSort and BuildDedupRuns are helpers for the party producing witness
data. Their output is untrusted. VerifyDedupRuns never sorts anything, it only
asserts properties of the arrays it is given. Keep it that way: the split
documents which party is responsible for which guarantee.

## Masked scans

VerifyDedupRuns visits all N slots regardless of the logical length, the
positions past the logical end are masked out of each assertion rather than
skipped. This mirrors the constraint form, where the shape of the computation
must not depend on private data. The direct early exit form exists for
comparison in tests and yields identical outcomes.

## Burden of knowledge

As with the other primitives in this family, callers are expected to provide
arrays of matching capacity and records whose Empty value is the zero value of
the record. Capacity mismatches are reported, everything else is asserted.
*/
