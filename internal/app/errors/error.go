package errors

import (
	"net/http"
	"reflect"

	"github.com/sirupsen/logrus"
)

// statusMessages is the fixed status -> message table. AppError messages are
// always derived from it; per-field information goes into Detail instead.
var statusMessages = map[int]string{
	http.StatusBadRequest:          "Bad request",
	http.StatusUnauthorized:        "Unauthorized",
	http.StatusForbidden:           "Forbidden",
	http.StatusNotFound:            "Not found",
	http.StatusUnprocessableEntity: "Unprocessable entity",
	http.StatusInternalServerError: "Internal server error",
	http.StatusBadGateway:          "Bad gateway",
	http.StatusServiceUnavailable:  "Service unavailable",
}

type AppError struct {
	StatusCode int
	Message    string
	Detail     map[string]string
}

func (e *AppError) Error() string {
	return e.Message
}

// NewAppError builds an AppError for one of the enumerated status codes.
// Callers must stay within the table; an unlisted code yields an empty message.
func NewAppError(statusCode int, detail map[string]string) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Message:    statusMessages[statusCode],
		Detail:     detail,
	}
}

func NewBadRequestError(detail map[string]string) *AppError {
	return NewAppError(http.StatusBadRequest, detail)
}

func NewUnauthorizedError(reason ...string) *AppError {
	if len(reason) > 0 {
		return NewAppError(http.StatusUnauthorized, map[string]string{"message": reason[0]})
	}
	return NewAppError(http.StatusUnauthorized, nil)
}

func NewForbiddenError() *AppError {
	return NewAppError(http.StatusForbidden, nil)
}

func NewNotFoundError() *AppError {
	return NewAppError(http.StatusNotFound, nil)
}

func NewUnprocessableError(detail map[string]string) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, detail)
}

func NewInternalServerError(originalError error) *AppError {
	if originalError != nil {
		logrus.Errorf("[%s] %s", reflect.TypeOf(originalError).String(), originalError)
	}
	return NewAppError(http.StatusInternalServerError, nil)
}
