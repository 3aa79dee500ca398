package filterer

import (
	"errors"
	"strconv"
)

// Errors reported by buffers, filters and the filter registry.
var (
	ErrInvalidDimensions = errors.New("invalid image dimensions")
	ErrIndexOutOfBounds  = errors.New("pixel index out of bounds")
	ErrEmptyImage        = errors.New("empty image")
	ErrImageTooSmall     = errors.New("image too small")
	ErrUnknownFilter     = errors.New("unknown filter")
	ErrReadOnlyControl   = errors.New("control is read-only")
)

// UnknownFilterError is returned when a filter name is not registered.
// It matches [ErrUnknownFilter] with [errors.Is].
type UnknownFilterError struct {
	Name string
}

func (e *UnknownFilterError) Error() string {
	return "unknown filter " + strconv.Quote(e.Name)
}

func (e *UnknownFilterError) Is(target error) bool {
	return target == ErrUnknownFilter
}

type errorString string

func (e errorString) Error() string { return string(e) }
