package path

import "errors"

// ErrInvalidPath reports a malformed path string. Every parse failure
// wraps it, with a cause describing what was wrong.
var ErrInvalidPath = errors.New("invalid path")
