package provider

import "errors"

// Sentinel errors for programmatic error handling. Callers distinguish
// failure kinds with errors.Is; the wrapped messages carry the offending
// locale, module, or function name.
var (
	ErrInvalidLocale   = errors.New("invalid locale")
	ErrMissingField    = errors.New("missing tag segment")
	ErrInvalidModule   = errors.New("invalid module")
	ErrInvalidFunction = errors.New("invalid function")
)
