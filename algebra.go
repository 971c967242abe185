package ndarray

import "github.com/itohio/ndarray/pkg/expr"

// Algebra is the one-character marker on an Array declaring whether it
// behaves as a generic array, a matrix, or a vector under arithmetic
// (spec §3). It is a type alias for expr.Algebra so the expression tree
// and the façade agree on one representation without an import cycle
// (expr has no dependency on this package).
type Algebra = expr.Algebra

const (
	// NoAlgebra (N) imposes no algebra constraint.
	NoAlgebra = expr.None
	// ArrayAlgebra (A) is the default: ordinary elementwise broadcasting.
	ArrayAlgebra = expr.A
	// MatrixAlgebra (M) requires rank 2; a scalar combines only with the diagonal.
	MatrixAlgebra = expr.M
	// VectorAlgebra (V) requires rank 1; broadcasts like A.
	VectorAlgebra = expr.V
)

// validateAlgebra enforces spec §3's rank invariants: M requires rank 2, V
// requires rank 1.
func validateAlgebra(alg Algebra, rank int) error {
	switch alg {
	case MatrixAlgebra:
		if rank != 2 {
			return &AlgebraRankError{Alg: alg, Want: 2, Got: rank}
		}
	case VectorAlgebra:
		if rank != 1 {
			return &AlgebraRankError{Alg: alg, Want: 1, Got: rank}
		}
	}
	return nil
}
