package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/dddlab/backend/pkg/apperror"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	raw := errors.New("customer not found")
	err := apperror.ErrEntityNotFound(raw)

	assert.Equal(t, http.StatusNotFound, err.HTTPCode)
	assert.Equal(t, apperror.EntityNotFoundCode, err.ErrorCode)
	assert.Equal(t, "Entity not found: customer not found", err.Error())
	assert.ErrorIs(t, err, raw)

	var appErr apperror.Error
	assert.True(t, errors.As(error(err), &appErr))
}

func TestErrorWithoutRaw(t *testing.T) {
	err := apperror.ErrInternalServer(nil)

	assert.Equal(t, "Internal Server Error", err.Error())
	assert.NoError(t, err.Unwrap())
}
