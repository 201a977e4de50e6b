package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrReadOnly     = errors.New("store is in read-only mode")
	ErrNotFound     = errors.New("note not found")
	ErrCorruptState = errors.New("persisted state is corrupt")
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidDate  = fmt.Errorf("%w: date must be formatted as YYYY-MM-DD", ErrInvalidInput)
)
