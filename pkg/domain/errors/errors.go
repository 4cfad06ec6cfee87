package errors

import "errors"

// lookup by identifier found nothing.
var ErrMissing = errors.New("missing")

// a uniqueness precondition was violated.
var ErrExists = errors.New("already exists")

// malformed input failed a schema-level check.
var ErrInvalid = errors.New("invalid")
