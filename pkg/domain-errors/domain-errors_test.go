package domainerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_MessageAndCode(t *testing.T) {
	err := New(CodeValidation, "fiscal_code is required")
	assert.Equal(t, "fiscal_code is required", err.Error())
	assert.True(t, HasCode(err, CodeValidation))
	assert.False(t, HasCode(err, CodeInternal))

	bare := New(CodeInternal, "")
	assert.Equal(t, string(CodeInternal), bare.Error())
}

func TestWrap_PreservesOriginalCode(t *testing.T) {
	inner := New(CodeInvalidInput, "formato non valido")
	wrapped := Wrap(inner, CodeInternal, "validation failed")

	// The original domain code survives wrapping.
	assert.True(t, HasCode(wrapped, CodeInvalidInput))
	assert.True(t, errors.Is(wrapped, &Error{Code: CodeInvalidInput}))

	var e *Error
	require.True(t, errors.As(wrapped, &e))
	assert.Equal(t, "validation failed", e.Message)
}

func TestWrap_NonDomainError(t *testing.T) {
	wrapped := Wrap(errors.New("boom"), CodeInternal, "something broke")
	assert.True(t, HasCode(wrapped, CodeInternal))
	assert.EqualError(t, errors.Unwrap(wrapped), "boom")
}
