package circuit

import (
	"fmt"
	"math"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/constraint/solver"
	"github.com/consensys/gnark/frontend"

	"github.com/forestrie/go-reconcile/reconcile"
	"github.com/forestrie/go-reconcile/sideeffect"
)

func init() {
	solver.RegisterHint(GetHints()...)
}

// GetHints returns all hint functions used in this package. Provers must have
// them registered.
func GetHints() []solver.Hint {
	return []solver.Hint{combineOrderHints}
}

// OrderHint is the in-circuit form of reconcile.OrderHint.
type OrderHint struct {
	Counter       frontend.Variable
	OriginalIndex frontend.Variable
}

// OrderHints runs the Order-Hint Combiner over lt and gte as a solver hint. The
// returned variables are not constrained in any way.
func OrderHints(api frontend.API, lt, gte []Effect) ([]OrderHint, error) {
	n := len(lt)
	if len(gte) != n {
		return nil, fmt.Errorf("%w: lt %d, gte %d", reconcile.ErrCapacityMismatch, n, len(gte))
	}
	if n == 0 {
		return nil, nil
	}

	inputs := make([]frontend.Variable, 0, 4*n)
	for _, arr := range [][]Effect{lt, gte} {
		for _, e := range arr {
			inputs = append(inputs, e.Value, e.Counter)
		}
	}

	outputs, err := api.Compiler().NewHint(combineOrderHints, 2*n, inputs...)
	if err != nil {
		return nil, err
	}

	hints := make([]OrderHint, n)
	for i := range hints {
		hints[i] = OrderHint{Counter: outputs[2*i], OriginalIndex: outputs[2*i+1]}
	}
	return hints, nil
}

// combineOrderHints takes the (value, counter) pairs of lt followed by those
// of gte and writes (counter, original index) per slot of the combined order.
func combineOrderHints(_ *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	if len(inputs)%4 != 0 || len(outputs) != len(inputs)/2 {
		return fmt.Errorf("combineOrderHints: %d inputs, %d outputs", len(inputs), len(outputs))
	}
	n := len(inputs) / 4

	lt, err := effectsFromHintInputs(inputs[:2*n])
	if err != nil {
		return err
	}
	gte, err := effectsFromHintInputs(inputs[2*n:])
	if err != nil {
		return err
	}

	hints, err := reconcile.CombineOrderHints(lt, gte)
	if err != nil {
		return err
	}
	for i, h := range hints {
		outputs[2*i].SetUint64(uint64(h.Counter))
		outputs[2*i+1].SetUint64(uint64(h.OriginalIndex))
	}
	return nil
}

func effectsFromHintInputs(inputs []*big.Int) ([]sideeffect.Effect, error) {
	effects := make([]sideeffect.Effect, len(inputs)/2)
	for i := range effects {
		var value fr.Element
		value.SetBigInt(inputs[2*i])
		counter := inputs[2*i+1]
		if !counter.IsUint64() || counter.Uint64() > math.MaxUint32 {
			return nil, fmt.Errorf("combineOrderHints: counter %s at %d does not fit 32 bits", counter, i)
		}
		effects[i] = sideeffect.NewEffect(value, uint32(counter.Uint64()))
	}
	return effects, nil
}
