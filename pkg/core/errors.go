package core

import "errors"

// Errors raised by the math and geometry layers. None of them are recoverable;
// they are returned up to main which aborts the render.
var (
	ErrDivisionByZero  = errors.New("division by zero")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNotImplemented  = errors.New("not implemented")
)
