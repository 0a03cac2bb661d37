// Package validation holds the predicates every service validates input with,
// and the binding helpers the HTTP layer uses to decode and check requests.
//
// The predicates are pure functions over loosely typed values so the same rule
// applies to a decoded JSON number, a path parameter or a decimal amount.
package validation
