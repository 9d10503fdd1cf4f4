// internal/services/errors.go
package services

import (
	"errors"
	"fmt"

	"github.com/javajoker/marketplace-backend/internal/utils"
)

// Error kinds returned by the services. Match them with errors.Is; the
// boundary layer decides how each kind is represented to the caller.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrIntegrityFault     = errors.New("integrity fault")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
)

var kindCodes = []struct {
	kind error
	code string
}{
	{ErrValidation, utils.CodeValidation},
	{ErrInvalidCredentials, utils.CodeInvalidCredentials},
	{ErrNotFound, utils.CodeNotFound},
	{ErrForbidden, utils.CodeForbidden},
	{ErrConflict, utils.CodeConflict},
	{ErrIntegrityFault, utils.CodeIntegrityFault},
}

// ErrorCode returns the API error code of the service error kind in err's
// chain, or the internal error code when err carries no kind.
func ErrorCode(err error) string {
	for _, kc := range kindCodes {
		if errors.Is(err, kc.kind) {
			return kc.code
		}
	}
	return utils.CodeInternal
}

// Error carries a kind plus the entity and reason it applies to.
type Error struct {
	Kind   error
	Entity string
	Reason string
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Entity != "" {
		msg = e.Entity + " " + msg
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func (e *Error) Code() string {
	return ErrorCode(e.Kind)
}

func NotFound(entity string) error {
	return &Error{Kind: ErrNotFound, Entity: entity}
}

func Forbidden(entity, reason string) error {
	return &Error{Kind: ErrForbidden, Entity: entity, Reason: reason}
}

func Conflict(entity, reason string) error {
	return &Error{Kind: ErrConflict, Entity: entity, Reason: reason}
}

func IntegrityFault(entity, format string, args ...interface{}) error {
	return &Error{Kind: ErrIntegrityFault, Entity: entity, Reason: fmt.Sprintf(format, args...)}
}

func validationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
