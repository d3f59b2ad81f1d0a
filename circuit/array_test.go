package circuit

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"
)

type arrayCircuit struct {
	IsEmpty []frontend.Variable
	Length  frontend.Variable
}

func (c *arrayCircuit) Define(api frontend.API) error {
	length := ValidateArray(api, c.IsEmpty)
	api.AssertIsEqual(length, c.Length)
	api.AssertIsEqual(ArrayLength(api, c.IsEmpty), c.Length)
	return nil
}

func TestValidateArray(t *testing.T) {
	tests := []struct {
		name    string
		flags   []int
		length  int
		wantErr bool
	}{
		{"all empty", []int{1, 1, 1}, 0, false},
		{"full", []int{0, 0, 0}, 3, false},
		{"padded", []int{0, 0, 1, 1}, 2, false},
		{"gap", []int{0, 1, 0, 1}, 1, true},
		{"wrong length", []int{0, 0, 1, 1}, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			circuit := &arrayCircuit{IsEmpty: make([]frontend.Variable, len(tt.flags))}
			assignment := &arrayCircuit{IsEmpty: make([]frontend.Variable, len(tt.flags)), Length: tt.length}
			for i, f := range tt.flags {
				assignment.IsEmpty[i] = f
			}
			err := test.IsSolved(circuit, assignment, ecc.BN254.ScalarField())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
