package domain

import "errors"

// Analysis and model-call error taxonomy.
//
// ErrModelUnavailable is a recognized operating mode (no credential configured),
// not a failure: the advisor selects the deterministic fallback for every call.
// Rate-limit errors are retried with backoff; everything else at the model
// boundary is absorbed by switching to the fallback.
var (
	ErrInvalidPortfolio       = errors.New("invalid portfolio")
	ErrModelUnavailable       = errors.New("model unavailable")
	ErrModelRateLimited       = errors.New("model rate limited")
	ErrModelRequestFailed     = errors.New("model request failed")
	ErrModelResponseMalformed = errors.New("model response malformed")
)
