package gabor

import "errors"

// Status errors returned by the factorization and dual-window routines.
// Validation failures wrap one of these sentinels, so callers can classify
// with errors.Is while the message carries the offending argument.
var (
	ErrNotPositiveArg  = errors.New("argument must be positive")
	ErrBadArg          = errors.New("invalid argument")
	ErrNotAFrame       = errors.New("gabor system does not form a frame")
	ErrNilArg          = errors.New("nil argument")
	ErrPlanCreation    = errors.New("fft plan creation failed")
	ErrInternalFailure = errors.New("internal numerical failure")
)
