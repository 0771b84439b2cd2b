package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppErrorMessageTable(t *testing.T) {
	tests := []struct {
		statusCode int
		message    string
	}{
		{http.StatusBadRequest, "Bad request"},
		{http.StatusUnauthorized, "Unauthorized"},
		{http.StatusForbidden, "Forbidden"},
		{http.StatusNotFound, "Not found"},
		{http.StatusUnprocessableEntity, "Unprocessable entity"},
		{http.StatusInternalServerError, "Internal server error"},
		{http.StatusBadGateway, "Bad gateway"},
		{http.StatusServiceUnavailable, "Service unavailable"},
	}

	for _, tt := range tests {
		err := NewAppError(tt.statusCode, nil)
		assert.Equal(t, tt.statusCode, err.StatusCode)
		assert.Equal(t, tt.message, err.Message)
		assert.Equal(t, tt.message, err.Error())
		assert.Nil(t, err.Detail)
	}
}

func TestNewAppErrorDetail(t *testing.T) {
	err := NewBadRequestError(map[string]string{"email": "Already exists"})

	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "Bad request", err.Message)
	assert.Equal(t, "Already exists", err.Detail["email"])
}

func TestNewUnauthorizedErrorReason(t *testing.T) {
	err := NewUnauthorizedError("Invalid credentials")

	assert.Equal(t, http.StatusUnauthorized, err.StatusCode)
	assert.Equal(t, "Unauthorized", err.Message)
	assert.Equal(t, "Invalid credentials", err.Detail["message"])

	bare := NewUnauthorizedError()
	assert.Nil(t, bare.Detail)
}
