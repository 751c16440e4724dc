package vecsense

import "github.com/kailas-cloud/vecsense/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidInput      = domain.ErrInvalidInput
	ErrUnsupportedModel  = domain.ErrUnsupportedModel
	ErrUnsupportedMethod = domain.ErrUnsupportedMethod
	ErrModelNotTrained   = domain.ErrModelNotTrained
	ErrDimensionMismatch = domain.ErrDimensionMismatch
	ErrSizeMismatch      = domain.ErrSizeMismatch
	ErrEmbeddingFailure  = domain.ErrEmbeddingFailure
)
