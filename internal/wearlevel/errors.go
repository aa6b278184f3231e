package wearlevel

import "errors"

var (
	// ErrLength is returned when a block buffer does not match the block length.
	ErrLength = errors.New("wearlevel: buffer length does not match block length")
)
