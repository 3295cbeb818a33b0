package itsmkb

import "github.com/kailas-cloud/itsmkb/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound         = domain.ErrNotFound
	ErrInvalidInput     = domain.ErrInvalidInput
	ErrStoreUnavailable = domain.ErrStoreUnavailable
	ErrCorruptData      = domain.ErrCorruptData
	ErrUnknownITSMType  = domain.ErrUnknownITSMType
)
