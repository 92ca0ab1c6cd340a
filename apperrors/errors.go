// Package apperrors defines the error kinds the services return and the HTTP
// status each kind is reported with.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation          Kind = "validation"
	KindDuplicate           Kind = "duplicate"
	KindAuthentication      Kind = "authentication"
	KindNotRegistered       Kind = "not_registered"
	KindPendingVerification Kind = "pending_verification"
	KindAccountInactive     Kind = "account_inactive"
	KindNotFound            Kind = "not_found"
	KindInvalidInput        Kind = "invalid_input"
	KindInternal            Kind = "internal"
)

// Error carries a Kind plus a caller-safe message. Field names the request
// field at fault when there is one; Namespace tells which uniqueness scope
// rejected a duplicate (account, tourist, authority).
type Error struct {
	Kind      Kind
	Message   string
	Field     string
	Namespace string
	Err       error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

func Duplicate(namespace, field, message string) *Error {
	return &Error{Kind: KindDuplicate, Namespace: namespace, Field: field, Message: message}
}

func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

func NotRegistered(message string) *Error {
	return &Error{Kind: KindNotRegistered, Message: message}
}

func PendingVerification(message string) *Error {
	return &Error{Kind: KindPendingVerification, Message: message}
}

func AccountInactive(message string) *Error {
	return &Error{Kind: KindAccountInactive, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func InvalidInput(field, message string) *Error {
	return &Error{Kind: KindInvalidInput, Field: field, Message: message}
}

// Internal wraps an unexpected failure. Its message is never shown to clients.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf reports the Kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation, KindDuplicate, KindInvalidInput:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindNotRegistered, KindPendingVerification, KindAccountInactive:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
