package hocon

import "errors"

var (
	// ErrConfigPathNotSet is returned when neither Options.ConfigPath nor the
	// HOCON_CONFIG_PATH environment variable names a file.
	ErrConfigPathNotSet = errors.New("hocon config path not set")
	// ErrParse wraps errors from the HOCON parser: missing, unreadable or
	// malformed files.
	ErrParse = errors.New("error parsing hocon file")
)
