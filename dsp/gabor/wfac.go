package gabor

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-gabor/internal/fftplan"
)

// WfacPlan computes the forward window factorization for a fixed lattice.
// The plan owns a length-d scratch buffer and a forward FFT plan; it may be
// executed repeatedly but not concurrently.
type WfacPlan[T Sample] struct {
	lat     Lattice
	scaling float64
	sbuf    []complex128
	fft     fftplan.Plan
}

// NewWfacPlan validates the lattice and acquires the transform resources.
func NewWfacPlan[T Sample](L, a, M int, opts ...PlanOption) (*WfacPlan[T], error) {
	lat, err := NewLattice(L, a, M)
	if err != nil {
		return nil, err
	}

	cfg := defaultPlanConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	fp, err := fftplan.New(lat.D, fftplan.Forward, cfg.flag)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlanCreation, err)
	}

	return &WfacPlan[T]{
		lat:     lat,
		scaling: math.Sqrt(float64(M)),
		sbuf:    make([]complex128, lat.D),
		fft:     fp,
	}, nil
}

// Lattice returns the validated lattice the plan was built for.
func (p *WfacPlan[T]) Lattice() Lattice { return p.lat }

// Execute factors the R windows in g, shape (L, R) with the signal axis
// contiguous, into the complex factor tensor gf of L*R elements.
func (p *WfacPlan[T]) Execute(g []T, R int, gf []complex128) error {
	if p == nil || p.fft == nil {
		return fmt.Errorf("wfac plan: %w", ErrNilArg)
	}

	if g == nil || gf == nil {
		return fmt.Errorf("wfac: %w", ErrNilArg)
	}

	if R <= 0 {
		return fmt.Errorf("wfac: R=%d: %w", R, ErrNotPositiveArg)
	}

	lat := p.lat
	if len(g) < lat.L*R || len(gf) < lat.L*R {
		return fmt.Errorf("wfac: buffers must hold L*R=%d elements: %w", lat.L*R, ErrBadArg)
	}

	fac := lat.Factor(R)
	pp, q, c, d := lat.P, lat.Q, lat.C, lat.D
	a, M, L := lat.A, lat.M, lat.L
	scal := complex(p.scaling, 0)

	// The destination pointer advances by one complex element per (k, l)
	// pair while s strides by SStride, realizing the factor layout.
	dst := 0

	for r := 0; r < c; r++ {
		for w := 0; w < R; w++ {
			for l := 0; l < q; l++ {
				for k := 0; k < pp; k++ {
					negrem := positiveRem(k*M-l*a, L)
					base := r + L*w

					switch src := any(g).(type) {
					case []float64:
						for s := 0; s < d; s++ {
							rem := (negrem + s*pp*M) % L
							p.sbuf[s] = complex(src[base+rem]*p.scaling, 0)
						}
					case []complex128:
						for s := 0; s < d; s++ {
							rem := (negrem + s*pp*M) % L
							p.sbuf[s] = src[base+rem] * scal
						}
					}

					if err := p.fft.Execute(p.sbuf); err != nil {
						return fmt.Errorf("wfac: %w", err)
					}

					for s := 0; s < d; s++ {
						gf[dst+s*fac.SStride] = p.sbuf[s]
					}

					dst++
				}
			}
		}
	}

	return nil
}

// Close releases the transform plan and scratch buffer. Close is
// idempotent; the plan must not be executed afterwards.
func (p *WfacPlan[T]) Close() error {
	if p == nil || p.fft == nil {
		return nil
	}

	err := p.fft.Close()
	p.fft = nil
	p.sbuf = nil

	return err
}

// Wfac is the one-shot forward factorization: it builds a plan, executes it
// once and releases it.
func Wfac[T Sample](g []T, L, R, a, M int, gf []complex128) error {
	if g == nil || gf == nil {
		return fmt.Errorf("wfac: %w", ErrNilArg)
	}

	if R <= 0 {
		return fmt.Errorf("wfac: R=%d: %w", R, ErrNotPositiveArg)
	}

	plan, err := NewWfacPlan[T](L, a, M)
	if err != nil {
		return fmt.Errorf("wfac: init: %w", err)
	}
	defer plan.Close()

	return plan.Execute(g, R, gf)
}
