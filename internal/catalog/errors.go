package catalog

import "errors"

var (
	// ErrNameSpaceExhausted reports that no unused provider name could be drawn.
	ErrNameSpaceExhausted = errors.New("provider name space exhausted")
	// ErrInsufficientProviders reports that events cannot reference two distinct providers.
	ErrInsufficientProviders = errors.New("at least two providers are required")
	// ErrInvalidCount reports a non-positive record count or an out-of-range chunk size.
	ErrInvalidCount = errors.New("count must be positive")
	// ErrUnknownCategory reports an event whose category is absent from the vocabulary.
	ErrUnknownCategory = errors.New("unknown category")
)
