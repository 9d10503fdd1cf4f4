// internal/services/errors_test.go
package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/javajoker/marketplace-backend/internal/utils"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"not found", NotFound("Item"), utils.CodeNotFound},
		{"wrapped not found", fmt.Errorf("loading: %w", NotFound("Store")), utils.CodeNotFound},
		{"forbidden", Forbidden("Item", "not store owner"), utils.CodeForbidden},
		{"conflict", Conflict("User", "email already registered"), utils.CodeConflict},
		{"integrity fault", IntegrityFault("Store", "item %d references missing store %d", 1, 2), utils.CodeIntegrityFault},
		{"invalid credentials", ErrInvalidCredentials, utils.CodeInvalidCredentials},
		{"validation", validationError(errors.New("name is required")), utils.CodeValidation},
		{"plain error", errors.New("connection reset"), utils.CodeInternal},
		{"nil", nil, utils.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, ErrorCode(tt.err))
		})
	}
}

func TestErrorCodeMethodMatchesKind(t *testing.T) {
	var svcErr *Error
	assert.True(t, errors.As(Conflict("User", "username already taken"), &svcErr))
	assert.Equal(t, utils.CodeConflict, svcErr.Code())
	assert.Equal(t, "User conflict: username already taken", svcErr.Error())
}
