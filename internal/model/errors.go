package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checking.
var (
	ErrTypeMismatch = errors.New("not a todo")
	ErrOutOfRange   = errors.New("out of range")
	ErrNotFound     = errors.New("not found")
)

// OpError records which list operation failed and on what.
// Index is only meaningful when Title is empty.
type OpError struct {
	Op    string
	Title string
	Index int
	Len   int
	Err   error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case errors.Is(e.Err, ErrNotFound):
		return fmt.Sprintf("%s: no todo titled %q: %v", e.Op, e.Title, ErrNotFound)
	case errors.Is(e.Err, ErrOutOfRange):
		return fmt.Sprintf("%s: index %d out of range [%d,%d): %v", e.Op, e.Index, -e.Len, e.Len, ErrOutOfRange)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
