package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOmega_EmptyReturnsError(t *testing.T) {
	_, err := NewOmega(nil)
	require.Error(t, err)
	assert.Equal(t, AposterioriEtasCalculationEmptyOmega, StatusOf(err))
}

func TestNewOmega_NonSquareReturnsError(t *testing.T) {
	_, err := NewOmega([]float64{1, 2, 3})
	require.Error(t, err)
	assert.Equal(t, AposterioriEtasCalculationNoSquareOmega, StatusOf(err))
}

func TestNewOmega_ValidMatrix(t *testing.T) {
	// 2x2 diagonal omega, variances 0.09 and 0.16.
	om, err := NewOmega([]float64{0.09, 0, 0, 0.16})
	require.NoError(t, err)
	assert.Equal(t, 2, om.Dim())
	assert.InDelta(t, 0.09, om.At(0, 0), 1e-12)
	assert.InDelta(t, 0.16, om.At(1, 1), 1e-12)

	_, ok := om.Cholesky()
	assert.True(t, ok, "diagonal positive matrix must be positive-definite")
}

func TestOmega_Cholesky_RejectsNonPSD(t *testing.T) {
	// Indefinite matrix: [[1, 2], [2, 1]] has eigenvalues -1 and 3.
	om, err := NewOmega([]float64{1, 2, 2, 1})
	require.NoError(t, err)
	_, ok := om.Cholesky()
	assert.False(t, ok)
}
