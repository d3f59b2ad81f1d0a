package circuit

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/selector"

	"github.com/forestrie/go-reconcile/sideeffect"
)

// Effect is the in-circuit form of sideeffect.Effect.
type Effect struct {
	Value   frontend.Variable
	Counter frontend.Variable
}

// Write is the in-circuit form of sideeffect.StorageWrite.
type Write struct {
	Slot    frontend.Variable
	Value   frontend.Variable
	Counter frontend.Variable
}

// EffectAssignment converts e to a witness assignment.
func EffectAssignment(e sideeffect.Effect) Effect {
	return Effect{Value: bigOf(e.Value()), Counter: uint64(e.Counter())}
}

// WriteAssignment converts w to a witness assignment.
func WriteAssignment(w sideeffect.StorageWrite) Write {
	return Write{Slot: bigOf(w.Slot()), Value: bigOf(w.Value()), Counter: uint64(w.Counter())}
}

func bigOf(x fr.Element) *big.Int {
	return x.BigInt(new(big.Int))
}

func (e Effect) isEmpty(api frontend.API) frontend.Variable {
	return api.Mul(api.IsZero(e.Value), api.IsZero(e.Counter))
}

func (w Write) isEmpty(api frontend.API) frontend.Variable {
	return api.Mul(api.IsZero(w.Slot), api.IsZero(w.Value), api.IsZero(w.Counter))
}

func (w Write) fields() []frontend.Variable {
	return []frontend.Variable{w.Slot, w.Value, w.Counter}
}

func selectWrite(api frontend.API, cond frontend.Variable, a, b Write) Write {
	return Write{
		Slot:    api.Select(cond, a.Slot, b.Slot),
		Value:   api.Select(cond, a.Value, b.Value),
		Counter: api.Select(cond, a.Counter, b.Counter),
	}
}

// muxWrite returns writes[sel]. sel must be a valid index.
func muxWrite(api frontend.API, sel frontend.Variable, writes []Write) Write {
	slots := make([]frontend.Variable, len(writes))
	values := make([]frontend.Variable, len(writes))
	counters := make([]frontend.Variable, len(writes))
	for i, w := range writes {
		slots[i], values[i], counters[i] = w.Slot, w.Value, w.Counter
	}
	return Write{
		Slot:    mux(api, sel, slots),
		Value:   mux(api, sel, values),
		Counter: mux(api, sel, counters),
	}
}

// mux returns inputs[sel]. A single input needs no selection.
func mux(api frontend.API, sel frontend.Variable, inputs []frontend.Variable) frontend.Variable {
	if len(inputs) == 1 {
		return inputs[0]
	}
	return selector.Mux(api, sel, inputs...)
}

// assertIf asserts ok == 1 wherever cond == 1. Both must be boolean.
func assertIf(api frontend.API, cond, ok frontend.Variable) {
	api.AssertIsEqual(api.Mul(cond, api.Sub(1, ok)), 0)
}

// assertWriteEqualIf asserts a == b wherever cond == 1.
func assertWriteEqualIf(api frontend.API, cond frontend.Variable, a, b Write) {
	fa, fb := a.fields(), b.fields()
	for i := range fa {
		api.AssertIsEqual(api.Mul(cond, api.Sub(fa[i], fb[i])), 0)
	}
}

// isLess is 1 when a < b as integers over the whole field, else 0.
func isLess(api frontend.API, a, b frontend.Variable) frontend.Variable {
	return api.IsZero(api.Add(api.Cmp(a, b), 1))
}
