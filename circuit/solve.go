package circuit

import (
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
)

// Stats summarises a compiled constraint system.
type Stats struct {
	Constraints     int
	PublicVariables int
	SecretVariables int
}

// Compile builds the R1CS for def over the BN254 scalar field.
func Compile(def frontend.Circuit) (constraint.ConstraintSystem, Stats, error) {
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, def)
	if err != nil {
		return nil, Stats{}, err
	}
	return ccs, Stats{
		Constraints:     ccs.GetNbConstraints(),
		PublicVariables: ccs.GetNbPublicVariables(),
		SecretVariables: ccs.GetNbSecretVariables(),
	}, nil
}

// Solve reports whether assignment satisfies the compiled def. A nil error
// means every constraint, and so every check in Define, held.
func Solve(def, assignment frontend.Circuit) error {
	ccs, _, err := Compile(def)
	if err != nil {
		return err
	}
	w, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return err
	}
	return ccs.IsSolved(w)
}
