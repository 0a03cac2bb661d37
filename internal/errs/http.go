package errs

import (
	"net/http"
)

// Sentinels for errors.Is. They match any *HTTPError of the same Kind.
var (
	ErrBadRequest           = &HTTPError{Kind: KindBadRequest}
	ErrResourceNotFound     = &HTTPError{Kind: KindResourceNotFound}
	ErrResourcePersistence  = &HTTPError{Kind: KindResourcePersistence}
	ErrAuthentication       = &HTTPError{Kind: KindAuthentication}
	ErrForbidden            = &HTTPError{Kind: KindForbidden}
	ErrInternalServer       = &HTTPError{Kind: KindInternalServer}
	ErrMethodNotImplemented = &HTTPError{Kind: KindMethodNotImplemented}
)

func newError(kind Kind, status int, message, reason string) *HTTPError {
	return &HTTPError{
		Kind:    kind,
		Status:  status,
		Message: message,
		Reason:  reasonOrDefault(reason),
	}
}

// NewBadRequestError creates a 400 for input that fails validation or names a
// key that is not a property of the target entity.
func NewBadRequestError(reason string) *HTTPError {
	return newError(KindBadRequest, http.StatusBadRequest, "Invalid parameters provided.", reason)
}

// NewFieldValidationError creates a 400 carrying per-field binding errors.
func NewFieldValidationError(reason string, fieldErrors []FieldError) *HTTPError {
	err := NewBadRequestError(reason)
	err.Errors = fieldErrors
	return err
}

// NewResourceNotFoundError creates a 404 for empty collections and missed lookups.
func NewResourceNotFoundError(reason string) *HTTPError {
	return newError(KindResourceNotFound, http.StatusNotFound, "No resource found using provided parameters.", reason)
}

// NewResourcePersistenceError creates a 409 for uniqueness conflicts.
func NewResourcePersistenceError(reason string) *HTTPError {
	return newError(KindResourcePersistence, http.StatusConflict, "The resource was not persisted.", reason)
}

// NewAuthenticationError creates a 401.
func NewAuthenticationError(reason string) *HTTPError {
	return newError(KindAuthentication, http.StatusUnauthorized, "Authentication could not be completed.", reason)
}

// NewForbiddenError creates a 403 for authenticated callers lacking a role.
func NewForbiddenError(reason string) *HTTPError {
	return newError(KindForbidden, http.StatusForbidden, "Access to the resource is forbidden.", reason)
}

// NewInternalServerError creates a 500. The reason is always the generic one:
// storage diagnostics are logged, never returned.
func NewInternalServerError() *HTTPError {
	return newError(KindInternalServer, http.StatusInternalServerError, "An unexpected error occurred.", "")
}

// NewMethodNotImplementedError creates a 501 for deliberately unsupported operations.
func NewMethodNotImplementedError(reason string) *HTTPError {
	return newError(KindMethodNotImplemented, http.StatusNotImplemented, "The requested method is not yet implemented.", reason)
}

// FromStatus builds an error of the kind matching an HTTP status, used when
// the router itself rejects a request (unknown route, bad method).
func FromStatus(status int, reason string) *HTTPError {
	switch status {
	case http.StatusBadRequest:
		return NewBadRequestError(reason)
	case http.StatusNotFound:
		return NewResourceNotFoundError(reason)
	case http.StatusConflict:
		return NewResourcePersistenceError(reason)
	case http.StatusUnauthorized:
		return NewAuthenticationError(reason)
	case http.StatusForbidden:
		return NewForbiddenError(reason)
	case http.StatusNotImplemented:
		return NewMethodNotImplementedError(reason)
	}
	if status >= 400 && status < 500 {
		return &HTTPError{
			Kind:    Kind(MakeUpperCaseWithUnderscores(http.StatusText(status))),
			Status:  status,
			Message: http.StatusText(status),
			Reason:  reasonOrDefault(reason),
		}
	}
	return NewInternalServerError()
}

// ValidationError converts a generic validation error into a 400.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: " + err.Error())
}
