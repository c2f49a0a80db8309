//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrIO, ErrValidation)
	assert.NotEqual(t, ErrIO, ErrNotFound)
	assert.NotEqual(t, ErrValidation, ErrNotFound)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "unknown key",
		Location: "/home/me/.scaffold/config.yaml",
		Field:    "log.colour",
		Hint:     "Remove the key",
	}

	out := detail.Error()

	assert.Contains(t, out, "Error: validation failed")
	assert.Contains(t, out, "Location: /home/me/.scaffold/config.yaml")
	assert.Contains(t, out, "Field: log.colour")
	assert.Contains(t, out, "unknown key")
	assert.Contains(t, out, "Hint: Remove the key")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("bad root", "config.yaml", "root", "Use a path")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "bad root", detail.Message)
	assert.Equal(t, "config.yaml", detail.Location)
	assert.Equal(t, "root", detail.Field)
	assert.Equal(t, "Use a path", detail.Hint)
}

func TestNewIOError(t *testing.T) {
	err := NewIOError("write", "scripts/run_tests.sh", fs.ErrPermission)

	assert.True(t, errors.Is(err, ErrIO))
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.Contains(t, err.Error(), "write scripts/run_tests.sh")
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrValidation, "schema check failed")

	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.Contains(t, wrapped.Error(), "schema check failed")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"io", NewIOError("mkdir", "app", fs.ErrExist), ExitGeneralError},
		{"validation", Wrap(ErrValidation, "bad"), ExitValidationError},
		{"not found", Wrap(ErrNotFound, "missing"), ExitNotFound},
		{"explicit exit error", &ExitError{Code: 7, Err: errors.New("x")}, 7},
		{"wrapped exit error", fmt.Errorf("ctx: %w", &ExitError{Code: 2}), 2},
		{"plain", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitErrorMessage(t *testing.T) {
	assert.Equal(t, "boom", (&ExitError{Code: 1, Err: errors.New("boom")}).Error())
	assert.Equal(t, "exit code 3", (&ExitError{Code: 3}).Error())
}
