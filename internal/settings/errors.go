package settings

import "errors"

// Errors returned while loading sources and binding the merged mapping.
var (
	// ErrInvalidSchema indicates that the destination cannot be described as a
	// settings schema (for example, it is not a pointer to a struct).
	ErrInvalidSchema = errors.New("invalid settings schema")
	// ErrDecode indicates that a complex value (mapping or sequence) could not
	// be decoded, typically because a string did not hold valid JSON.
	ErrDecode = errors.New("error decoding complex value")
	// ErrMissingField indicates that a required field was not supplied by any
	// source.
	ErrMissingField = errors.New("required field is missing")
	// ErrInvalidSettings indicates that the merged values do not fit the
	// declared field types or failed the Validate hook.
	ErrInvalidSettings = errors.New("invalid settings")
	// ErrSecretsDir indicates that the configured secrets path exists but is
	// not a directory.
	ErrSecretsDir = errors.New("secrets path is not a directory")
)
