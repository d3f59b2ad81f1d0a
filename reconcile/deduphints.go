package reconcile

import "fmt"

// DedupHints is the witness VerifyDedupRuns checks.
type DedupHints[T any] struct {
	Sorted     []T
	Deduped    []T
	RunLengths []uint32
}

// BuildDedupRuns produces the sorted array, its last-write-wins collapse and
// the run length table for arr. All three have the capacity of arr.
//
// Like WitnessSort this runs on the witness side and its output is not
// trusted, VerifyDedupRuns is what checks it.
func BuildDedupRuns[T DedupRecord[T]](arr []T) (DedupHints[T], error) {
	n := len(arr)
	length, err := ValidateArray(arr)
	if err != nil {
		return DedupHints[T]{}, err
	}

	hints := DedupHints[T]{
		Sorted:     make([]T, n),
		Deduped:    make([]T, n),
		RunLengths: make([]uint32, n),
	}
	if n == 0 {
		return hints, nil
	}

	empty := arr[0].Empty()
	for i := range hints.Sorted {
		hints.Sorted[i] = empty
		hints.Deduped[i] = empty
	}

	tuples := WitnessSort(arr[:length], PositionCounterLess[T])
	for i, t := range tuples {
		hints.Sorted[i] = t.Elem
	}

	runs := 0
	for i := 0; i < int(length); i++ {
		item := hints.Sorted[i]
		if i > 0 && ComparePositions(hints.Sorted[i-1], item) == 0 {
			if hints.Sorted[i-1].Counter() == item.Counter() {
				return DedupHints[T]{}, fmt.Errorf(
					"%w: counter %d at index %d", ErrDuplicateCounter, item.Counter(), i)
			}
			hints.RunLengths[runs-1]++
			hints.Deduped[runs-1] = item
			continue
		}
		hints.RunLengths[runs] = 1
		hints.Deduped[runs] = item
		runs++
	}
	return hints, nil
}
