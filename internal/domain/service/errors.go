package service

import "errors"

// Errors returned (wrapped) by TextGenerator implementations
var (
	ErrServiceUnavailable = errors.New("inference service unreachable")
	ErrTimeout            = errors.New("inference request timed out")
	ErrTransport          = errors.New("inference transport error")
	ErrModelNotFound      = errors.New("model not found")
	ErrEmptyCompletion    = errors.New("response has no completion")
	ErrMalformedResponse  = errors.New("malformed inference response")
)
