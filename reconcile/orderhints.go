package reconcile

import "fmt"

// OrderHint records, for one slot of the combined order, the counter of the
// record occupying it and that record's index within its source array. The
// zero value is the empty hint.
type OrderHint struct {
	Counter       uint32
	OriginalIndex uint32
}

// OrderPartition holds the boundaries the combiner selects slots by.
type OrderPartition struct {
	NumPrivateA uint32
	NumPrivateB uint32
	LenA        uint32
}

// TotalPrivate is the first slot after all private items.
func (p OrderPartition) TotalPrivate() uint32 { return p.NumPrivateA + p.NumPrivateB }

// TotalNonPublicB is the first slot holding B's zero counter items.
func (p OrderPartition) TotalNonPublicB() uint32 { return p.LenA + p.NumPrivateB }

// NewOrderPartition computes the partition boundaries for a and b.
func NewOrderPartition[T OrderedRecord[T]](a, b []T) OrderPartition {
	return OrderPartition{
		NumPrivateA: CountPrivate(a),
		NumPrivateB: CountPrivate(b),
		LenA:        ArrayLength(a),
	}
}

// CombineOrderHints lays out the counter sorted items of a ("lt" class) and b
// ("gte" class) as a single combined order:
//
//	[0, p1)          a's private items, ascending counter
//	[p1, p1+p2)      b's private items, ascending counter
//	[p1+p2, l1+p2)   a's zero counter items, in sorted order
//	[l1+p2, N)       b's remaining items
//
// where p1 and p2 are the private counts and l1 is the length of a. Private
// runs of the two sources are not interleaved with each other, callers assign
// the sources non overlapping counter ranges.
//
// The caller guarantees the combined length of a and b is at most N. When it
// is not, the layout is cut at N and the trailing items of b are dropped
// without an error.
//
// The result is a hint and is not checked here.
func CombineOrderHints[T OrderedRecord[T]](a, b []T) ([]OrderHint, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: lt %d, gte %d", ErrCapacityMismatch, len(a), len(b))
	}

	sortedA := WitnessSort(a, CounterLess[T])
	sortedB := WitnessSort(b, CounterLess[T])

	return LayoutOrderHints(NewOrderPartition(a, b), sortedA, sortedB), nil
}

// LayoutOrderHints selects, for each output slot, the source tuple by
// comparing the slot index against the partition boundaries. It does no
// comparisons between records.
func LayoutOrderHints[T Ordered](p OrderPartition, sortedA, sortedB []SortedTuple[T]) []OrderHint {
	n := uint32(len(sortedA))
	totalPrivate := p.TotalPrivate()
	totalNonPublicB := p.TotalNonPublicB()

	hints := make([]OrderHint, n)
	for i := uint32(0); i < n; i++ {
		var t SortedTuple[T]
		if i < p.NumPrivateA {
			t = sortedA[i]
		} else if i < totalPrivate {
			t = sortedB[i-p.NumPrivateA]
		} else if i < totalNonPublicB {
			t = sortedA[i-p.NumPrivateB]
		} else {
			t = sortedB[i-p.LenA]
		}
		hints[i] = OrderHint{Counter: t.Elem.Counter(), OriginalIndex: t.OriginalIndex}
	}
	return hints
}
