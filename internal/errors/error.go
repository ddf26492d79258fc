package errors

import "errors"

var (
	ErrWriteFailed     = errors.New("map write failed")
	ErrInvalidTopology = errors.New("invalid map topology")
	ErrUnknownSink     = errors.New("unknown output sink")
	ErrConfig          = errors.New("configuration error")
	ErrDecode          = errors.New("map decode failed")
)
