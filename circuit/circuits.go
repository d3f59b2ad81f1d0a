package circuit

import (
	"github.com/consensys/gnark/frontend"

	"github.com/forestrie/go-reconcile/reconcile"
	"github.com/forestrie/go-reconcile/sideeffect"
)

// DedupCircuit checks a dedup witness of fixed capacity.
type DedupCircuit struct {
	Sorted     []Write
	Deduped    []Write
	RunLengths []frontend.Variable
}

// NewDedupCircuit returns a circuit definition for the given capacity.
func NewDedupCircuit(capacity int) *DedupCircuit {
	return &DedupCircuit{
		Sorted:     make([]Write, capacity),
		Deduped:    make([]Write, capacity),
		RunLengths: make([]frontend.Variable, capacity),
	}
}

func (c *DedupCircuit) Define(api frontend.API) error {
	return VerifyDedupRuns(api, c.Sorted, c.Deduped, c.RunLengths)
}

// DedupAssignment converts native dedup hints into a witness assignment.
func DedupAssignment(hints reconcile.DedupHints[sideeffect.StorageWrite]) *DedupCircuit {
	c := NewDedupCircuit(len(hints.Sorted))
	for i := range hints.Sorted {
		c.Sorted[i] = WriteAssignment(hints.Sorted[i])
		c.Deduped[i] = WriteAssignment(hints.Deduped[i])
		c.RunLengths[i] = uint64(hints.RunLengths[i])
	}
	return c
}

// OrderHintCircuit recomputes the combined order hint of Lt and Gte and
// asserts it equals Claimed. Both inputs must be validly padded.
//
// Equality with the hint shows the claimed layout is the one the combiner
// produces. It does not show the layout is a correct ordering of the inputs,
// the hint itself is unconstrained.
type OrderHintCircuit struct {
	Lt      []Effect
	Gte     []Effect
	Claimed []OrderHint
}

// NewOrderHintCircuit returns a circuit definition for the given capacity.
func NewOrderHintCircuit(capacity int) *OrderHintCircuit {
	return &OrderHintCircuit{
		Lt:      make([]Effect, capacity),
		Gte:     make([]Effect, capacity),
		Claimed: make([]OrderHint, capacity),
	}
}

func (c *OrderHintCircuit) Define(api frontend.API) error {
	ValidateArray(api, effectsEmpty(api, c.Lt))
	ValidateArray(api, effectsEmpty(api, c.Gte))

	hints, err := OrderHints(api, c.Lt, c.Gte)
	if err != nil {
		return err
	}
	for i, h := range hints {
		api.AssertIsEqual(h.Counter, c.Claimed[i].Counter)
		api.AssertIsEqual(h.OriginalIndex, c.Claimed[i].OriginalIndex)
	}
	return nil
}

// OrderHintAssignment converts native arrays and a claimed layout into a
// witness assignment.
func OrderHintAssignment(lt, gte []sideeffect.Effect, claimed []reconcile.OrderHint) *OrderHintCircuit {
	c := NewOrderHintCircuit(len(lt))
	for i := range lt {
		c.Lt[i] = EffectAssignment(lt[i])
		c.Gte[i] = EffectAssignment(gte[i])
		c.Claimed[i] = OrderHint{Counter: uint64(claimed[i].Counter), OriginalIndex: uint64(claimed[i].OriginalIndex)}
	}
	return c
}
