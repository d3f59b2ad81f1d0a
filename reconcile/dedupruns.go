package reconcile

import "fmt"

// runState is carried across the single forward pass of the verifier.
type runState[T DedupRecord[T]] struct {
	remainingInRun uint32
	runStart       T
	dedupedCursor  uint32
}

// VerifyDedupRuns checks that deduped is the collapse of sorted that keeps the
// last (highest counter) record of each position run, with run boundaries given
// by runLengths.
//
// sorted must have its non-empty prefix ordered by position, ties broken by
// ascending counter. The verifier does not sort or search for maxima. It trusts
// the run segmentation in runLengths and asserts that
//
//   - run starts strictly increase by position
//   - every item of a run shares the run position
//   - counters strictly increase within a run, so the closing item is the maximum
//   - the closing item of each run is the next deduped value
//   - the number of closed runs equals the length of deduped
//
// All N slots are visited. Slots past the logical end of sorted are masked out
// of every assertion. The first failing assertion is returned and the pass is
// over, there is no recovery.
func VerifyDedupRuns[T DedupRecord[T]](sorted, deduped []T, runLengths []uint32) error {
	n := len(sorted)
	if len(deduped) != n || len(runLengths) != n {
		return fmt.Errorf(
			"%w: sorted %d, deduped %d, run lengths %d", ErrCapacityMismatch, n, len(deduped), len(runLengths))
	}
	if n == 0 {
		return nil
	}

	numNonEmpty := ArrayLength(sorted)

	st := runState[T]{runStart: sorted[0]}
	for i := 0; i < n; i++ {
		active := uint32(i) < numNonEmpty
		if err := st.step(sorted, deduped, runLengths, i, active); err != nil {
			return err
		}
	}

	dedupedLength, err := ValidateArray(deduped)
	if err != nil {
		return err
	}
	if st.dedupedCursor != dedupedLength {
		return fmt.Errorf(
			"%w: closed %d runs, deduped length %d", ErrDedupLengthMismatch, st.dedupedCursor, dedupedLength)
	}
	return nil
}

// step applies one slot of the pass. When active is false the state is left
// unchanged and nothing is asserted.
func (st *runState[T]) step(sorted, deduped []T, runLengths []uint32, i int, active bool) error {
	if !active {
		return nil
	}

	item := sorted[i]

	if st.remainingInRun == 0 {
		st.remainingInRun = runLengths[st.dedupedCursor]
		// The first run starts at slot 0 and has no predecessor.
		if i > 0 && ComparePositions(st.runStart, item) >= 0 {
			return fmt.Errorf("%w: run starting at index %d", ErrRunPositionOrder, i)
		}
		st.runStart = item
	}

	if st.remainingInRun == 0 {
		return fmt.Errorf("%w: index %d, run %d", ErrRunLengthExhausted, i, st.dedupedCursor)
	}
	st.remainingInRun--

	if ComparePositions(item, st.runStart) != 0 {
		return fmt.Errorf("%w: index %d", ErrRunPositionMismatch, i)
	}

	if st.remainingInRun == 0 {
		if !deduped[st.dedupedCursor].Equal(item) {
			return fmt.Errorf("%w: run %d closing at index %d", ErrDedupValueMismatch, st.dedupedCursor, i)
		}
		st.dedupedCursor++
		return nil
	}

	if item.Counter() >= nextCounter(sorted, i) {
		return fmt.Errorf("%w: index %d", ErrRunCounterOrder, i)
	}
	return nil
}

// nextCounter returns the counter of the item following index i. Past the end
// of the array that is the empty sentinel's counter.
func nextCounter[T DedupRecord[T]](sorted []T, i int) uint32 {
	if i+1 < len(sorted) {
		return sorted[i+1].Counter()
	}
	return sorted[i].Empty().Counter()
}

// verifyDedupRunsDirect is VerifyDedupRuns with an early exit at the logical
// end of sorted. It must produce the same outcome as the masked scan for every
// input.
func verifyDedupRunsDirect[T DedupRecord[T]](sorted, deduped []T, runLengths []uint32) error {
	n := len(sorted)
	if len(deduped) != n || len(runLengths) != n {
		return fmt.Errorf(
			"%w: sorted %d, deduped %d, run lengths %d", ErrCapacityMismatch, n, len(deduped), len(runLengths))
	}
	if n == 0 {
		return nil
	}

	numNonEmpty := int(ArrayLength(sorted))

	st := runState[T]{runStart: sorted[0]}
	for i := 0; i < numNonEmpty; i++ {
		if err := st.step(sorted, deduped, runLengths, i, true); err != nil {
			return err
		}
	}

	dedupedLength, err := ValidateArray(deduped)
	if err != nil {
		return err
	}
	if st.dedupedCursor != dedupedLength {
		return fmt.Errorf(
			"%w: closed %d runs, deduped length %d", ErrDedupLengthMismatch, st.dedupedCursor, dedupedLength)
	}
	return nil
}
