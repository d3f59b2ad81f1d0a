package circuit

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-reconcile/reconcile"
	"github.com/forestrie/go-reconcile/reconciletesting"
	"github.com/forestrie/go-reconcile/sideeffect"
)

func write(slot uint64, counter uint32) sideeffect.StorageWrite {
	return sideeffect.WriteFromUint64(slot, 100*slot+uint64(counter), counter)
}

func canonicalHints(capacity int) reconcile.DedupHints[sideeffect.StorageWrite] {
	pad := reconciletesting.PadWrites
	return reconcile.DedupHints[sideeffect.StorageWrite]{
		Sorted: pad(capacity,
			write(1, 1), write(1, 4), write(2, 3), write(3, 2), write(3, 5), write(3, 6),
			write(4, 8), write(4, 9), write(5, 7)),
		Deduped:    pad(capacity, write(1, 4), write(2, 3), write(3, 6), write(4, 9), write(5, 7)),
		RunLengths: reconciletesting.PadUint32(capacity, 2, 1, 3, 2, 1),
	}
}

func dedupHints(sorted, deduped []sideeffect.StorageWrite, runLengths []uint32) reconcile.DedupHints[sideeffect.StorageWrite] {
	return reconcile.DedupHints[sideeffect.StorageWrite]{Sorted: sorted, Deduped: deduped, RunLengths: runLengths}
}

func isSolved(hints reconcile.DedupHints[sideeffect.StorageWrite]) error {
	return test.IsSolved(NewDedupCircuit(len(hints.Sorted)), DedupAssignment(hints), ecc.BN254.ScalarField())
}

func TestDedupCircuitCanonical(t *testing.T) {
	for _, capacity := range []int{9, 12} {
		hints := canonicalHints(capacity)
		require.NoError(t, reconcile.VerifyDedupRuns(hints.Sorted, hints.Deduped, hints.RunLengths))
		require.NoError(t, isSolved(hints), "capacity %d", capacity)
	}
}

func TestDedupCircuitRejects(t *testing.T) {
	pad := reconciletesting.PadWrites
	rl := reconciletesting.PadUint32
	type hints = reconcile.DedupHints[sideeffect.StorageWrite]

	tests := []struct {
		name      string
		hints     func() hints
		nativeErr error
	}{
		{
			"deduped holds an earlier write for the position",
			func() hints {
				h := canonicalHints(12)
				h.Deduped[0] = h.Sorted[0]
				return h
			},
			reconcile.ErrDedupValueMismatch,
		},
		{
			"positions not monotonic",
			func() hints {
				return dedupHints(pad(4, write(2, 1), write(1, 2)), pad(4, write(2, 1), write(1, 2)), rl(4, 1, 1))
			},
			reconcile.ErrRunPositionOrder,
		},
		{
			"zero length run inside data",
			func() hints {
				h := canonicalHints(12)
				h.RunLengths[4] = 0
				return h
			},
			reconcile.ErrRunLengthExhausted,
		},
		{
			"run spans two positions",
			func() hints {
				return dedupHints(pad(3, write(1, 1), write(2, 2)), pad(3, write(2, 2)), rl(3, 2))
			},
			reconcile.ErrRunPositionMismatch,
		},
		{
			"counters decrease within a run",
			func() hints {
				return dedupHints(pad(3, write(1, 4), write(1, 1)), pad(3, write(1, 1)), rl(3, 2))
			},
			reconcile.ErrRunCounterOrder,
		},
		{
			"run still open at capacity",
			func() hints {
				return dedupHints(pad(2, write(1, 1), write(1, 2)), pad(2, write(1, 2)), rl(2, 3))
			},
			reconcile.ErrRunCounterOrder,
		},
		{
			"deduped claims an extra run",
			func() hints {
				h := canonicalHints(12)
				h.Deduped[5] = write(6, 10)
				return h
			},
			reconcile.ErrDedupLengthMismatch,
		},
		{
			"deduped padding has a gap",
			func() hints {
				h := canonicalHints(12)
				h.Deduped[7] = write(6, 10)
				return h
			},
			reconcile.ErrPaddingInvalid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := tt.hints()
			// the native verifier names the violated invariant, the circuit
			// must be unsatisfiable for the same witness
			require.ErrorIs(t, reconcile.VerifyDedupRuns(h.Sorted, h.Deduped, h.RunLengths), tt.nativeErr)
			require.Error(t, isSolved(h))
		})
	}
}

func TestDedupCircuitEdgeCases(t *testing.T) {
	pad := reconciletesting.PadWrites
	rl := reconciletesting.PadUint32

	require.NoError(t, isSolved(dedupHints(pad(4), pad(4), rl(4))), "all empty")
	require.NoError(t, isSolved(dedupHints(pad(1, write(3, 1)), pad(1, write(3, 1)), rl(1, 1))), "capacity one")

	single := pad(4, write(7, 1), write(7, 2), write(7, 5), write(7, 9))
	require.NoError(t, isSolved(dedupHints(single, pad(4, write(7, 9)), rl(4, 4))), "single run")

	ones := pad(4, write(1, 9), write(2, 3), write(3, 1))
	require.NoError(t, isSolved(dedupHints(ones, ones, rl(4, 1, 1, 1))), "run lengths of one")
}

// TestDedupCircuitAgreesWithNative feeds random (and randomly corrupted)
// witnesses to both verifiers.
func TestDedupCircuitAgreesWithNative(t *testing.T) {
	tc := reconciletesting.NewTestContext(t, reconciletesting.TestConfig{
		Seed: 31337, TestLabelPrefix: "TestDedupCircuitAgreesWithNative",
	})

	for round := 0; round < 40; round++ {
		n := 2 + tc.Rand.Intn(7)
		h, err := reconcile.BuildDedupRuns(tc.RandomWrites(n, tc.Rand.Intn(n+1), 1+tc.Rand.Intn(4), 0))
		require.NoError(t, err)

		if round%2 == 1 {
			i, j := tc.Rand.Intn(n), tc.Rand.Intn(n)
			h.Sorted[i], h.Sorted[j] = h.Sorted[j], h.Sorted[i]
		}

		native := reconcile.VerifyDedupRuns(h.Sorted, h.Deduped, h.RunLengths)
		solved := isSolved(h)
		require.Equal(t, native == nil, solved == nil, "round %d: native %v, circuit %v", round, native, solved)
	}
}

func TestDedupCircuitCompiles(t *testing.T) {
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, NewDedupCircuit(8))
	require.NoError(t, err)
	require.NotZero(t, ccs.GetNbConstraints())
}

func TestSolveCompiledDedupCircuit(t *testing.T) {
	h := canonicalHints(12)
	require.NoError(t, Solve(NewDedupCircuit(12), DedupAssignment(h)))

	h.Deduped[2] = write(3, 5)
	require.Error(t, Solve(NewDedupCircuit(12), DedupAssignment(h)))

	_, stats, err := Compile(NewDedupCircuit(4))
	require.NoError(t, err)
	require.NotZero(t, stats.Constraints)
	require.NotZero(t, stats.SecretVariables)
}
