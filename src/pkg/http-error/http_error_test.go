package httpError

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsCarryHTTPCode(t *testing.T) {
	assert.Equal(t, 400, NewBadRequest().Code)
	assert.Equal(t, 401, NewUnauthorized().Code)
	assert.Equal(t, 403, NewForbidden().Code)
	assert.Equal(t, 404, NewNotFound().Code)
	assert.Equal(t, 409, NewConflict().Code)
	assert.Equal(t, 500, NewInternalServerError().Code)
}

func TestWithKindKeepsCode(t *testing.T) {
	err := NewBadRequest().WithKind("INSUFFICIENT_FUNDS")
	assert.Equal(t, 400, err.Code)
	assert.Equal(t, "INSUFFICIENT_FUNDS", err.Kind)

	err.Message = "wallet balance is not sufficient"
	assert.Equal(t, "wallet balance is not sufficient", err.Error())
}
