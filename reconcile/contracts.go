package reconcile

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Ordered is satisfied by records carrying an execution counter. A counter of
// zero is reserved for records that have no execution order (public writes).
type Ordered interface {
	Counter() uint32
}

// Positioned is satisfied by records that have a storage position. Positions
// are field sized keys.
type Positioned interface {
	Position() fr.Element
}

// Empty is satisfied by record types that designate a sentinel value for "no
// record here". The method must not depend on the receiver.
type Empty[T any] interface {
	Empty() T
}

// Eq is structural equality.
type Eq[T any] interface {
	Equal(other T) bool
}

// EmptyEq is the minimum needed to tell padding from real records.
type EmptyEq[T any] interface {
	Empty[T]
	Eq[T]
}

// OrderedRecord is the contract for records the Order-Hint Combiner accepts.
type OrderedRecord[T any] interface {
	Ordered
	Empty[T]
	Eq[T]
}

// DedupRecord is the contract for records the Dedup-Run Verifier accepts.
type DedupRecord[T any] interface {
	OrderedRecord[T]
	Positioned
}

// IsEmpty reports whether x is the empty sentinel of its type.
func IsEmpty[T EmptyEq[T]](x T) bool {
	return x.Equal(x.Empty())
}

// ComparePositions orders positions by their canonical integer value. It
// returns -1, 0 or 1.
func ComparePositions(a, b Positioned) int {
	pa := a.Position()
	pb := b.Position()
	return pa.Cmp(&pb)
}
