package errs

import "strings"

// UnspecifiedReason is the reason attached when the caller supplies none.
const UnspecifiedReason = "Unspecified Reason"

// Kind names one member of the error taxonomy.
type Kind string

const (
	KindBadRequest           Kind = "BAD_REQUEST"
	KindResourceNotFound     Kind = "RESOURCE_NOT_FOUND"
	KindResourcePersistence  Kind = "RESOURCE_PERSISTENCE"
	KindAuthentication       Kind = "AUTHENTICATION"
	KindForbidden            Kind = "FORBIDDEN"
	KindInternalServer       Kind = "INTERNAL_SERVER"
	KindMethodNotImplemented Kind = "METHOD_NOT_IMPLEMENTED"
)

// FieldError represents a field-level validation error.
//
//	{ "field": "email", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the single error type that crosses the service boundary.
//
// Only Message, Reason and (when present) Errors are serialized; Kind and
// Status drive the response status and errors.Is matching.
type HTTPError struct {
	Kind    Kind   `json:"-"`
	Status  int    `json:"-"`
	Message string `json:"message"`
	Reason  string `json:"reason"`

	// Errors holds field-level validation errors produced while binding requests.
	Errors []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	if e.Reason == "" || e.Reason == UnspecifiedReason {
		return e.Message
	}
	return e.Message + ": " + e.Reason
}

// Is reports whether target is an *HTTPError of the same Kind. A target with an
// empty Kind matches any *HTTPError.
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	if !ok {
		return false
	}
	return t.Kind == "" || t.Kind == e.Kind
}

// WithReason returns a copy of e with Reason replaced.
func (e *HTTPError) WithReason(reason string) *HTTPError {
	return &HTTPError{
		Kind:    e.Kind,
		Status:  e.Status,
		Message: e.Message,
		Reason:  reasonOrDefault(reason),
		Errors:  e.Errors,
	}
}

// Code returns the machine readable form of the kind, e.g. "RESOURCE_NOT_FOUND".
func (e *HTTPError) Code() string {
	return string(e.Kind)
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}

func reasonOrDefault(reason string) string {
	if strings.TrimSpace(reason) == "" {
		return UnspecifiedReason
	}
	return reason
}
