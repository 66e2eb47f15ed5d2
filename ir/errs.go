package ir

import (
	"errors"
	"fmt"
)

// Navigation errors. Every failure an operation reports wraps exactly
// one of these, so callers can classify with errors.Is and still show
// the wrapped detail.
var (
	ErrPathNotFound     = errors.New("path not found")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrUnsupported      = errors.New("unsupported path segment")
)

// NotFoundError reports a well-formed path that does not resolve
// against the document. At is the path prefix up to and including the
// failing segment.
type NotFoundError struct {
	At string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s at %s", ErrPathNotFound, e.At)
}

func (e *NotFoundError) Unwrap() error { return ErrPathNotFound }

// TypeError reports a segment applied to the wrong kind of node.
type TypeError struct {
	At   string
	Want Type
	Got  Type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s at %s: expected %s, got %s", ErrTypeMismatch, e.At, e.Want, e.Got)
}

func (e *TypeError) Unwrap() error { return ErrTypeMismatch }

// BoundsError reports an array index outside the valid range. Index
// is the index as written in the path, before negative resolution;
// Len is the array length at the time of the check.
type BoundsError struct {
	At    string
	Index int
	Len   int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s at %s: index %d, length %d", ErrIndexOutOfBounds, e.At, e.Index, e.Len)
}

func (e *BoundsError) Unwrap() error { return ErrIndexOutOfBounds }
