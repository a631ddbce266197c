// Package errors provides the classified error primitives used across ngdoctags.
//
// Tag processing itself never fails: malformed type expressions degrade to a
// wildcard or an empty link. Errors come from the host side (tag validation,
// unknown tags), from configuration and from file I/O, and are built with a
// fluent builder:
//
//	err := errors.ValidationError("tag requires a value").
//		WithContext("tag", "param").
//		WithCause(cause).
//		Build()
package errors
