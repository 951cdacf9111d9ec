package domain

import "errors"

// Error taxonomy shared by every layer. Use-case errors wrap these with %w.
var (
	ErrInvalidTime           = errors.New("invalid time")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrNotFound              = errors.New("not found")
	ErrLookupFailure         = errors.New("lookup failure")
	ErrReportDispatchFailure = errors.New("report dispatch failure")
	ErrIndexOutOfRange       = errors.New("index out of range")
)
