package circuit

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-reconcile/reconcile"
	"github.com/forestrie/go-reconcile/reconciletesting"
	"github.com/forestrie/go-reconcile/sideeffect"
)

func hint(counter, index uint32) reconcile.OrderHint {
	return reconcile.OrderHint{Counter: counter, OriginalIndex: index}
}

func TestOrderHintCircuit(t *testing.T) {
	e := sideeffect.EffectFromUint64
	pad := reconciletesting.PadEffects

	lt := pad(8, e(600, 9), e(400, 3), e(500, 6))
	gte := pad(8, e(200, 13), e(100, 19), e(300, 16))
	claimed := []reconcile.OrderHint{
		hint(3, 1), hint(6, 2), hint(9, 0), hint(13, 0), hint(16, 2), hint(19, 1), hint(0, 3), hint(0, 4),
	}

	err := test.IsSolved(NewOrderHintCircuit(8), OrderHintAssignment(lt, gte, claimed), ecc.BN254.ScalarField())
	require.NoError(t, err)

	wrong := append([]reconcile.OrderHint(nil), claimed...)
	wrong[0], wrong[1] = wrong[1], wrong[0]
	err = test.IsSolved(NewOrderHintCircuit(8), OrderHintAssignment(lt, gte, wrong), ecc.BN254.ScalarField())
	require.Error(t, err)
}

func TestOrderHintCircuitRejectsBadPadding(t *testing.T) {
	e := sideeffect.EffectFromUint64
	lt := []sideeffect.Effect{e(600, 9), {}, e(500, 6), {}}
	gte := make([]sideeffect.Effect, 4)

	// the claimed layout is what the combiner would produce, only the padding is wrong
	claimed, err := reconcile.CombineOrderHints(lt, gte)
	require.NoError(t, err)

	err = test.IsSolved(NewOrderHintCircuit(4), OrderHintAssignment(lt, gte, claimed), ecc.BN254.ScalarField())
	require.Error(t, err)
}

func TestOrderHintCircuitMatchesNative(t *testing.T) {
	tc := reconciletesting.NewTestContext(t, reconciletesting.TestConfig{
		Seed: 5, TestLabelPrefix: "TestOrderHintCircuitMatchesNative",
	})
	for round := 0; round < 20; round++ {
		n := 1 + tc.Rand.Intn(10)
		lenLt := tc.Rand.Intn(n + 1)
		lt := tc.RandomEffects(n, lenLt, 3, 0)
		gte := tc.RandomEffects(n, tc.Rand.Intn(n-lenLt+1), 3, 500)

		claimed, err := reconcile.CombineOrderHints(lt, gte)
		require.NoError(t, err)
		err = test.IsSolved(NewOrderHintCircuit(n), OrderHintAssignment(lt, gte, claimed), ecc.BN254.ScalarField())
		require.NoError(t, err, "round %d", round)
	}
}

func TestCombineOrderHintsHint(t *testing.T) {
	in := func(vs ...int64) []*big.Int {
		out := make([]*big.Int, len(vs))
		for i, v := range vs {
			out[i] = big.NewInt(v)
		}
		return out
	}
	// lt = [(600,9), (400,3), empty], gte = [(200,13), empty, empty]
	inputs := in(600, 9, 400, 3, 0, 0, 200, 13, 0, 0, 0, 0)
	outputs := in(0, 0, 0, 0, 0, 0)

	require.NoError(t, combineOrderHints(ecc.BN254.ScalarField(), inputs, outputs))
	got := make([]int64, len(outputs))
	for i, o := range outputs {
		got[i] = o.Int64()
	}
	assert.Equal(t, []int64{3, 1, 9, 0, 13, 0}, got)

	tooWide := in(1, 1<<33, 0, 0)
	require.Error(t, combineOrderHints(ecc.BN254.ScalarField(), tooWide, in(0, 0)))

	require.Error(t, combineOrderHints(ecc.BN254.ScalarField(), in(1, 1, 0), in(0, 0)))
}
