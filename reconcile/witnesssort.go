package reconcile

import "sort"

// SortedTuple pairs an element with the index it held in the unsorted array.
type SortedTuple[T any] struct {
	OriginalIndex uint32
	Elem          T
}

// WitnessSort returns the elements of arr sorted by less, each paired with its
// original index. The sort is stable, so elements less considers equal keep
// their original relative order.
//
// The result is a hint. It is produced out of band by the party building the
// witness and nothing derived from it is trusted without a separate check.
func WitnessSort[T any](arr []T, less func(a, b T) bool) []SortedTuple[T] {
	tuples := make([]SortedTuple[T], len(arr))
	for i, x := range arr {
		tuples[i] = SortedTuple[T]{OriginalIndex: uint32(i), Elem: x}
	}
	sort.SliceStable(tuples, func(i, j int) bool {
		return less(tuples[i].Elem, tuples[j].Elem)
	})
	return tuples
}

// CounterLess orders by ascending counter with zero counters last. Empty
// sentinels have a zero counter, so with a stable sort the public records stay
// ahead of the padding.
func CounterLess[T Ordered](a, b T) bool {
	ca, cb := a.Counter(), b.Counter()
	if ca == 0 {
		return false
	}
	if cb == 0 {
		return true
	}
	return ca < cb
}

// PositionCounterLess orders by ascending position, ties broken by ascending
// counter. This is the order VerifyDedupRuns expects of its sorted input.
func PositionCounterLess[T interface {
	Ordered
	Positioned
}](a, b T) bool {
	if c := ComparePositions(a, b); c != 0 {
		return c < 0
	}
	return a.Counter() < b.Counter()
}
