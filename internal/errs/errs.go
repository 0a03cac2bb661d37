// Package errs defines the error taxonomy shared by every layer.
//
// Each failure is an *HTTPError carrying a Kind, a fixed human-readable
// message, a reason and the HTTP status the transport should answer with.
// Services raise these directly; repositories translate storage failures into
// them once (see package sqlerr); the global error handler serializes them as
// {message, reason}.
package errs
