package circuit

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/rangecheck"

	"github.com/forestrie/go-reconcile/reconcile"
)

// CounterBits is the width counters and run lengths are range checked to.
const CounterBits = 32

// VerifyDedupRuns constrains deduped to be the last-write-wins collapse of
// sorted with run boundaries given by runLengths. It is the constraint form of
// reconcile.VerifyDedupRuns and asserts the same properties in the same order
// for every slot, gated by the prefix mask of sorted.
//
// The only error returned is for mismatched capacities, which is a defect in
// the caller's circuit definition rather than in the witness. Witness
// violations make the constraint system unsatisfiable.
func VerifyDedupRuns(api frontend.API, sorted, deduped []Write, runLengths []frontend.Variable) error {
	n := len(sorted)
	if len(deduped) != n || len(runLengths) != n {
		return fmt.Errorf(
			"%w: sorted %d, deduped %d, run lengths %d", reconcile.ErrCapacityMismatch, n, len(deduped), len(runLengths))
	}
	if n == 0 {
		return nil
	}

	rc := rangecheck.New(api)
	for i := 0; i < n; i++ {
		rc.Check(sorted[i].Counter, CounterBits)
		rc.Check(deduped[i].Counter, CounterBits)
		rc.Check(runLengths[i], CounterBits)
	}

	active := PrefixMask(api, writesEmpty(api, sorted))

	remaining := frontend.Variable(0)
	runStart := sorted[0]
	cursor := frontend.Variable(0)

	for i := 0; i < n; i++ {
		item := sorted[i]

		startsRun := api.Mul(active[i], api.IsZero(remaining))
		remaining = api.Select(startsRun, mux(api, cursor, runLengths), remaining)
		if i > 0 {
			// run starts strictly increase by position
			assertIf(api, startsRun, isLess(api, runStart.Slot, item.Slot))
		}
		runStart = selectWrite(api, startsRun, item, runStart)

		// no zero length runs inside the data
		assertIf(api, active[i], api.Sub(1, api.IsZero(remaining)))
		remaining = api.Sub(remaining, active[i])

		// every item shares its run's position
		assertIf(api, active[i], api.IsZero(api.Sub(item.Slot, runStart.Slot)))

		// the closing item is the claimed deduped value
		closes := api.Mul(active[i], api.IsZero(remaining))
		assertWriteEqualIf(api, closes, muxWrite(api, cursor, deduped), item)
		cursor = api.Add(cursor, closes)

		// mid run, counters strictly increase. Past capacity the next item is
		// the empty sentinel.
		next := frontend.Variable(0)
		if i+1 < n {
			next = sorted[i+1].Counter
		}
		assertIf(api, api.Sub(active[i], closes), isLess(api, item.Counter, next))
	}

	api.AssertIsEqual(cursor, ValidateArray(api, writesEmpty(api, deduped)))
	return nil
}
