package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch signals two vectors of different length.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
	// ErrUnsupportedModel signals an unknown embedding model name.
	ErrUnsupportedModel = errors.New("unsupported embedding model")
	// ErrModelNotTrained signals predict/evaluate before train.
	ErrModelNotTrained = errors.New("model not trained")
	// ErrSizeMismatch signals mismatched vector and label counts.
	ErrSizeMismatch = errors.New("size mismatch")
	// ErrEmbeddingFailure signals an embedding provider failure.
	ErrEmbeddingFailure = errors.New("embedding failure")
	// ErrUnsupportedMethod signals an unknown retrieval method.
	ErrUnsupportedMethod = errors.New("unsupported search method")
	// ErrInvalidInput signals a request that failed validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrNotImplemented signals a feature that is not available in this deployment.
	ErrNotImplemented = errors.New("not implemented")
)

// MethodError ties a failure to the retrieval method that produced it.
type MethodError struct {
	Method string
	Err    error
}

func (e *MethodError) Error() string { return fmt.Sprintf("method %s: %v", e.Method, e.Err) }

func (e *MethodError) Unwrap() error { return e.Err }

// ModelError ties a failure to the embedding model that produced it.
type ModelError struct {
	Model EmbeddingModel
	Err   error
}

func (e *ModelError) Error() string { return fmt.Sprintf("model %s: %v", e.Model, e.Err) }

func (e *ModelError) Unwrap() error { return e.Err }

// NewModelNotTrained reports a missing model with guidance to train it first.
func NewModelNotTrained(model EmbeddingModel) error {
	return &ModelError{
		Model: model,
		Err:   fmt.Errorf("%w: train the %s model first", ErrModelNotTrained, model),
	}
}
