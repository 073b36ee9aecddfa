package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputingStatus_String(t *testing.T) {
	assert.Equal(t, "Ok", Ok.String())
	assert.Equal(t, "TooBig", TooBig.String())
	assert.Contains(t, ComputingStatus(999).String(), "ComputingStatus(999)")
}

func TestError_Is(t *testing.T) {
	err := NewError(TooBig, "too many intakes")
	assert.True(t, errors.Is(err, NewError(TooBig, "different message")))
	assert.False(t, errors.Is(err, NewError(BadParameters, "")))
}

func TestWrapError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := WrapError(ParameterExtractionError, "evaluating Ke", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "ParameterExtractionError")
	assert.Contains(t, err.Error(), "boom")
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, Ok, StatusOf(nil))
	assert.Equal(t, TooBig, StatusOf(NewError(TooBig, "x")))
	assert.Equal(t, ComputingComponentExceptionError, StatusOf(errors.New("unexpected")))
}
