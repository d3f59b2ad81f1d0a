package witness

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/forestrie/go-reconcile/reconcile"
	"github.com/forestrie/go-reconcile/sideeffect"
)

// DedupBundle carries a Dedup-Run Verifier witness for one proving pass.
type DedupBundle struct {
	PassID     uuid.UUID `cbor:"1,keyasint" yaml:"pass_id"`
	Sorted     []Record  `cbor:"2,keyasint" yaml:"sorted"`
	Deduped    []Record  `cbor:"3,keyasint" yaml:"deduped"`
	RunLengths []uint32  `cbor:"4,keyasint" yaml:"run_lengths"`
}

// OrderBundle carries the two source arrays of the Order-Hint Combiner.
type OrderBundle struct {
	PassID uuid.UUID `cbor:"1,keyasint" yaml:"pass_id"`
	Lt     []Record  `cbor:"2,keyasint" yaml:"lt"`
	Gte    []Record  `cbor:"3,keyasint" yaml:"gte"`
}

// NewDedupBundle wraps hints for a new pass.
func NewDedupBundle(hints reconcile.DedupHints[sideeffect.StorageWrite]) DedupBundle {
	return DedupBundle{
		PassID:     uuid.New(),
		Sorted:     writeRecords(hints.Sorted),
		Deduped:    writeRecords(hints.Deduped),
		RunLengths: append([]uint32(nil), hints.RunLengths...),
	}
}

// NewOrderBundle wraps the source arrays for a new pass.
func NewOrderBundle(lt, gte []sideeffect.Effect) OrderBundle {
	return OrderBundle{
		PassID: uuid.New(),
		Lt:     effectRecords(lt),
		Gte:    effectRecords(gte),
	}
}

// Hints converts the bundle back to native records. Capacities are not
// checked here, the verifier reports a mismatch.
func (b DedupBundle) Hints() (reconcile.DedupHints[sideeffect.StorageWrite], error) {
	sorted, err := storageWrites(b.Sorted)
	if err != nil {
		return reconcile.DedupHints[sideeffect.StorageWrite]{}, fmt.Errorf("sorted: %w", err)
	}
	deduped, err := storageWrites(b.Deduped)
	if err != nil {
		return reconcile.DedupHints[sideeffect.StorageWrite]{}, fmt.Errorf("deduped: %w", err)
	}
	return reconcile.DedupHints[sideeffect.StorageWrite]{
		Sorted:     sorted,
		Deduped:    deduped,
		RunLengths: b.RunLengths,
	}, nil
}

// Effects converts the bundle back to native records.
func (b OrderBundle) Effects() ([]sideeffect.Effect, []sideeffect.Effect, error) {
	lt, err := effects(b.Lt)
	if err != nil {
		return nil, nil, fmt.Errorf("lt: %w", err)
	}
	gte, err := effects(b.Gte)
	if err != nil {
		return nil, nil, fmt.Errorf("gte: %w", err)
	}
	return lt, gte, nil
}

// WriteSet is the unsorted input to BuildDedupRuns.
type WriteSet struct {
	PassID uuid.UUID `cbor:"1,keyasint" yaml:"pass_id"`
	Writes []Record  `cbor:"2,keyasint" yaml:"writes"`
}

// NewWriteSet wraps writes for a new pass.
func NewWriteSet(writes []sideeffect.StorageWrite) WriteSet {
	return WriteSet{PassID: uuid.New(), Writes: writeRecords(writes)}
}

func (s WriteSet) StorageWrites() ([]sideeffect.StorageWrite, error) {
	writes, err := storageWrites(s.Writes)
	if err != nil {
		return nil, fmt.Errorf("writes: %w", err)
	}
	return writes, nil
}
