package httpError

import "net/http"

// CommonError is the error shape returned by every usecase. Kind is a stable
// machine-readable code, Message is safe to show to the caller.
type CommonError struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (e *CommonError) Error() string {
	return e.Message
}

func NewBadRequest() *CommonError {
	return &CommonError{
		Code:    http.StatusBadRequest,
		Kind:    "BAD_REQUEST",
		Message: "bad request",
	}
}

func NewUnauthorized() *CommonError {
	return &CommonError{
		Code:    http.StatusUnauthorized,
		Kind:    "UNAUTHORIZED",
		Message: "unauthorized",
	}
}

func NewForbidden() *CommonError {
	return &CommonError{
		Code:    http.StatusForbidden,
		Kind:    "FORBIDDEN",
		Message: "forbidden",
	}
}

func NewNotFound() *CommonError {
	return &CommonError{
		Code:    http.StatusNotFound,
		Kind:    "NOT_FOUND",
		Message: "not found",
	}
}

func NewConflict() *CommonError {
	return &CommonError{
		Code:    http.StatusConflict,
		Kind:    "CONFLICT",
		Message: "conflict",
	}
}

func NewInternalServerError() *CommonError {
	return &CommonError{
		Code:    http.StatusInternalServerError,
		Kind:    "INTERNAL_SERVER_ERROR",
		Message: "internal server error",
	}
}

// WithKind overrides the machine-readable kind, keeping the HTTP code.
func (e *CommonError) WithKind(kind string) *CommonError {
	e.Kind = kind
	return e
}
