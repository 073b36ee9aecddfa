package model

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Omega is the covariance matrix of eta across all variable parameters of
// an analyte group (invariant 4): square, symmetric, positive-semi-
// definite, with off-diagonals encoding pair correlations.
type Omega struct {
	dense *mat.SymDense
	dim   int
}

// NewOmega builds an Omega from a row-major flattened square matrix.
// Returns AposterioriEtasCalculationEmptyOmega if values is empty, and
// AposterioriEtasCalculationNoSquareOmega if its length isn't a perfect
// square.
func NewOmega(values []float64) (*Omega, error) {
	if len(values) == 0 {
		return nil, NewError(AposterioriEtasCalculationEmptyOmega, "omega matrix has no entries")
	}
	dim := 0
	for d := 1; d*d <= len(values); d++ {
		if d*d == len(values) {
			dim = d
		}
	}
	if dim == 0 {
		return nil, NewError(AposterioriEtasCalculationNoSquareOmega, fmt.Sprintf("omega has %d entries, not a perfect square", len(values)))
	}
	sym := mat.NewSymDense(dim, nil)
	for i := 0; i < dim; i++ {
		for j := i; j < dim; j++ {
			sym.SetSym(i, j, values[i*dim+j])
		}
	}
	return &Omega{dense: sym, dim: dim}, nil
}

// Dim returns the dimension of the matrix.
func (o *Omega) Dim() int { return o.dim }

// Dense returns the underlying symmetric matrix (read-only use expected).
func (o *Omega) Dense() *mat.SymDense { return o.dense }

// Cholesky returns the Cholesky factorization L*L^T = Omega and whether it
// succeeded, for MVN sampling and as a definiteness check. It succeeds only
// for a positive-definite Omega; a singular positive-semi-definite Omega is
// reported as not ok.
func (o *Omega) Cholesky() (*mat.Cholesky, bool) {
	var chol mat.Cholesky
	ok := chol.Factorize(o.dense)
	return &chol, ok
}

// At returns the (i, j) entry.
func (o *Omega) At(i, j int) float64 { return o.dense.At(i, j) }
