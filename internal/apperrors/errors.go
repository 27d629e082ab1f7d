package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller's role does not permit the operation.
var ErrForbidden = errors.New("operation not permitted for caller role")

// ErrInvalidToken indicates that a presented wallet token matches no record.
var ErrInvalidToken = errors.New("invalid wallet token")

// ErrTokenInactive indicates the token exists but has been deactivated.
// Terminal for the current presentation; the token must be reactivated or
// regenerated by an administrator.
var ErrTokenInactive = errors.New("wallet token is inactive")

// ErrTokenExpired indicates the token's expiry timestamp has passed.
var ErrTokenExpired = errors.New("wallet token has expired")

// ErrWalletFrozen indicates the wallet is frozen and rejects both credits and debits.
var ErrWalletFrozen = errors.New("wallet is frozen")

// ErrInsufficientBalance indicates a debit larger than the current balance.
var ErrInsufficientBalance = errors.New("insufficient wallet balance")

// ErrIntegrityViolation indicates an attempted mutation of a committed
// movement record, or a detected balance/log mismatch. Fatal: the operation
// must halt and alert, never silently recover.
var ErrIntegrityViolation = errors.New("ledger integrity violation")

// AppError wraps infrastructure failures with an HTTP-style status code.
// Storage failures during commit are safe to retry from the top of the
// transfer call, since nothing commits partially.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
