package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		code int
		want int
	}{
		{"validation", ErrInvalidParams, http.StatusBadRequest},
		{"bad request", ErrBadRequest, http.StatusBadRequest},
		{"creation failed", ErrAssistantCreationFailed, http.StatusInternalServerError},
		{"data access", ErrDataAccess, http.StatusInternalServerError},
		{"unknown code falls back to internal", 99999, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.code))
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, ErrDataAccess))
	})

	t.Run("keeps existing code", func(t *testing.T) {
		inner := New(ErrInvalidParams, "name is required")
		wrapped := Wrap(fmt.Errorf("create: %w", inner), ErrDataAccess)
		assert.Equal(t, ErrInvalidParams, wrapped.Code)
	})

	t.Run("unwraps to cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		wrapped := NewDataAccessError(cause)
		assert.ErrorIs(t, wrapped, cause)
		assert.True(t, Is(wrapped, ErrDataAccess))
	})
}

func TestGetDetails(t *testing.T) {
	cause := errors.New(`relation "assistants" does not exist`)

	assert.Equal(t, cause.Error(), GetDetails(NewDataAccessError(cause)))
	assert.Equal(t, "name is required", GetDetails(New(ErrInvalidParams, "name is required")))
	assert.Equal(t, "Failed to create assistant", GetDetails(New(ErrAssistantCreationFailed)))
	assert.Equal(t, "plain", GetDetails(errors.New("plain")))
	assert.Equal(t, "", GetDetails(nil))
}

func TestExtractCode(t *testing.T) {
	assert.Equal(t, ErrInternalServer, ExtractCode(errors.New("boom")))
	assert.Equal(t, ErrBadRequest, ExtractCode(NewBadRequestError("bad json")))
	assert.True(t, IsClientError(ErrInvalidParams))
	assert.True(t, IsServerError(ErrDataAccess))
}
