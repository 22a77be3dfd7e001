package gabor

import "github.com/cwbudde/algo-gabor/internal/fftplan"

// Sample is the scalar type of a time-domain window: real or complex.
// Factor-domain data is always complex regardless of the regime; in the
// real regime the imaginary parts of the inverse factorization are
// guaranteed zero up to rounding and are discarded on output.
type Sample interface {
	float64 | complex128
}

type planConfig struct {
	flag   fftplan.Flag
	resTol float64
}

func defaultPlanConfig() planConfig {
	return planConfig{flag: fftplan.Measure}
}

// PlanOption configures factorization plan construction.
type PlanOption func(*planConfig)

// WithFlag selects the FFT planner effort hint. The default is Measure,
// matching the drivers.
func WithFlag(f fftplan.Flag) PlanOption {
	return func(c *planConfig) {
		c.flag = f
	}
}

// WithResidualTolerance enables verification of the imaginary residual that
// an inverse factorization discards when writing a real window. A residual
// above tol indicates corrupted factor data and surfaces ErrInternalFailure.
// Zero (the default) disables the check.
func WithResidualTolerance(tol float64) PlanOption {
	return func(c *planConfig) {
		if tol >= 0 {
			c.resTol = tol
		}
	}
}
