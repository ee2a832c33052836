package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCode(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		err := New(CodeValidation, "bad quantity")
		assert.True(t, HasCode(err, CodeValidation))
		assert.False(t, HasCode(err, CodeInternal))
		assert.Equal(t, "bad quantity", err.Error())
	})

	t.Run("through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", New(CodeBadRequest, "malformed"))
		assert.True(t, HasCode(err, CodeBadRequest))
	})

	t.Run("plain errors carry no code", func(t *testing.T) {
		assert.False(t, HasCode(errors.New("boom"), CodeInternal))
		assert.False(t, HasCode(nil, CodeInternal))
	})
}

func TestWrap(t *testing.T) {
	cause := errors.New("cause")
	err := Wrap(cause, CodeInternal, "failed")
	require.ErrorIs(t, err, cause)
	assert.Equal(t, "failed: cause", err.Error())
	assert.NoError(t, Wrap(nil, CodeInternal, "ignored"))
}

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(CodeBadRequest))
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(CodeValidation))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(CodeInternal))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(Code("unknown")))
}
