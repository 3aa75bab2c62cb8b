package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusFromErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "quota exceeded",
			err:      NewError("quarterly quota exceeded").Mark(ErrQuotaExceeded),
			expected: http.StatusTooManyRequests,
		},
		{
			name:     "sequence exhausted",
			err:      NewError("beacon code sequence exhausted").Mark(ErrSequenceExhausted),
			expected: http.StatusServiceUnavailable,
		},
		{
			name:     "partial commit",
			err:      NewError("issuance log append failed").Mark(ErrPartialCommit),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "not found",
			err:      NewError("surveyor not found").Mark(ErrNotFound),
			expected: http.StatusNotFound,
		},
		{
			name:     "invalid quantity",
			err:      NewError("quantity must be positive").Mark(ErrInvalidQuantity),
			expected: http.StatusBadRequest,
		},
		{
			name:     "unmarked error",
			err:      NewError("boom").Error(),
			expected: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatusFromErr(tt.err))
		})
	}
}

func TestHTTPStatusFromErrDoubleMarked(t *testing.T) {
	// An error carrying several marks must map to one stable status, with
	// the graver class winning.
	inner := NewError("beacon code sequence exhausted").Mark(ErrSequenceExhausted)
	err := WithError(inner).
		WithHint("Allocation failed after the quota reservation").
		Mark(ErrPartialCommit)

	assert.True(t, IsSequenceExhausted(err))
	assert.True(t, IsPartialCommit(err))

	for i := 0; i < 500; i++ {
		assert.Equal(t, http.StatusInternalServerError, HTTPStatusFromErr(err))
	}
}
