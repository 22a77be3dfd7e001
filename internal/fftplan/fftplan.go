package fftplan

import "errors"

// Direction selects the sign of the transform exponent.
type Direction int

const (
	// Forward applies the DFT with the negative exponent.
	Forward Direction = iota
	// Backward applies the DFT with the positive exponent, without the
	// conventional 1/n normalization.
	Backward
)

// Flag is an FFTW-style planner effort hint.
type Flag int

const (
	// Measure asks the planner to spend time up front for faster execution.
	Measure Flag = iota
	// Estimate asks for fast plan creation at the cost of execution speed.
	Estimate
)

// Plan executes an in-place complex DFT of fixed length and direction.
type Plan interface {
	// Len returns the transform length.
	Len() int
	// Execute transforms buf[:Len()] in place.
	Execute(buf []complex128) error
	// Close releases backend resources. The plan must not be executed
	// afterwards. Close is idempotent.
	Close() error
}

// Plan creation and execution errors.
var (
	ErrInvalidLength  = errors.New("fftplan: transform length must be positive")
	ErrNilBuffer      = errors.New("fftplan: nil buffer")
	ErrLengthMismatch = errors.New("fftplan: buffer shorter than plan length")
	ErrClosed         = errors.New("fftplan: plan is closed")
)

// New creates a plan for an in-place length-n DFT in the given direction.
//
// The flag is accepted for FFTW-style planner compatibility; both in-process
// backends plan eagerly, so it only documents caller intent.
func New(n int, dir Direction, flag Flag) (Plan, error) {
	_ = flag

	if n < 1 {
		return nil, ErrInvalidLength
	}

	if isPowerOfTwo(n) {
		if p, err := newAlgoPlan(n, dir); err == nil {
			return p, nil
		}
	}

	return newGonumPlan(n, dir), nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
