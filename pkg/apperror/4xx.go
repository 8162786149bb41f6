package apperror

import (
	"net/http"
)

const (
	BindingCode        = "400001"
	ValidationCode     = "400002"
	EntityNotFoundCode = "404003"
	ConflictCode       = "409004"
)

// 400 Bad Request
func ErrInvalidRequest(err error) Error {
	return NewError(err, http.StatusBadRequest, BindingCode, "Invalid request")
}

func ErrInvalidParam(err error) Error {
	return NewError(err, http.StatusBadRequest, ValidationCode, "Invalid param")
}

// 404 Not Found
func ErrEntityNotFound(err error) Error {
	return NewError(err, http.StatusNotFound, EntityNotFoundCode, "Entity not found")
}

// 409 Conflict
func ErrConflict(err error) Error {
	return NewError(err, http.StatusConflict, ConflictCode, "Entity already exists")
}
