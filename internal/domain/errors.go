package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput signals a malformed caller-supplied value.
	ErrInvalidInput = errors.New("invalid input")
	// ErrStoreUnavailable signals that the item store could not be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrCorruptData signals persisted data that cannot be decoded.
	ErrCorruptData = errors.New("corrupt stored data")
	// ErrUnknownITSMType signals a type outside the fixed enumeration.
	ErrUnknownITSMType = errors.New("unknown itsm type")
)
