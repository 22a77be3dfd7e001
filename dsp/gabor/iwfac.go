package gabor

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-gabor/internal/fftplan"
)

// IwfacPlan computes the inverse window factorization for a fixed lattice:
// factor domain back to time domain. The plan owns a length-d scratch
// buffer and a backward FFT plan; it may be executed repeatedly but not
// concurrently.
type IwfacPlan[T Sample] struct {
	lat     Lattice
	scaling float64
	sbuf    []complex128
	fft     fftplan.Plan
	resTol  float64
}

// NewIwfacPlan validates the lattice and acquires the transform resources.
func NewIwfacPlan[T Sample](L, a, M int, opts ...PlanOption) (*IwfacPlan[T], error) {
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

	fp, err := fftplan.New(lat.D, fftplan.Backward, cfg.flag)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlanCreation, err)
	}

	return &IwfacPlan[T]{
		lat:     lat,
		scaling: 1 / (math.Sqrt(float64(M)) * float64(lat.D)),
		sbuf:    make([]complex128, lat.D),
		fft:     fp,
		resTol:  cfg.resTol,
	}, nil
}

// Lattice returns the validated lattice the plan was built for.
func (p *IwfacPlan[T]) Lattice() Lattice { return p.lat }

// Execute maps the factor tensor gf of R windows back to the time domain
// window array g of shape (L, R). In the real regime only the real part is
// written; the imaginary residual is checked against the configured
// tolerance if one was set.
func (p *IwfacPlan[T]) Execute(gf []complex128, R int, g []T) error {
	if p == nil || p.fft == nil {
		return fmt.Errorf("iwfac plan: %w", ErrNilArg)
	}

	if gf == nil || g == nil {
		return fmt.Errorf("iwfac: %w", ErrNilArg)
	}

	if R <= 0 {
		return fmt.Errorf("iwfac: R=%d: %w", R, ErrNotPositiveArg)
	}

	lat := p.lat
	if len(gf) < lat.L*R || len(g) < lat.L*R {
		return fmt.Errorf("iwfac: buffers must hold L*R=%d elements: %w", lat.L*R, ErrBadArg)
	}

	fac := lat.Factor(R)
	pp, q, c, d := lat.P, lat.Q, lat.C, lat.D
	a, M, L := lat.A, lat.M, lat.L
	scal := complex(p.scaling, 0)

	// The source pointer advances by one complex element per (k, l) pair
	// while s strides by SStride, mirroring the forward factorization.
	src := 0
	maxResidual := 0.0

	for r := 0; r < c; r++ {
		for w := 0; w < R; w++ {
			for l := 0; l < q; l++ {
				for k := 0; k < pp; k++ {
					for s := 0; s < d; s++ {
						p.sbuf[s] = gf[src+s*fac.SStride] * scal
					}

					if err := p.fft.Execute(p.sbuf); err != nil {
						return fmt.Errorf("iwfac: %w", err)
					}

					negrem := positiveRem(k*M-l*a, L)
					base := r + L*w

					// Each (l, k) pair hits a disjoint residue set, so no
					// output position is written twice.
					switch out := any(g).(type) {
					case []complex128:
						for s := 0; s < d; s++ {
							out[base+(negrem+s*pp*M)%L] = p.sbuf[s]
						}
					case []float64:
						for s := 0; s < d; s++ {
							v := p.sbuf[s]
							if im := math.Abs(imag(v)); im > maxResidual {
								maxResidual = im
							}
							out[base+(negrem+s*pp*M)%L] = real(v)
						}
					}

					src++
				}
			}
		}
	}

	if p.resTol > 0 && maxResidual > p.resTol {
		return fmt.Errorf("iwfac: discarded imaginary residual %.3g exceeds tolerance %.3g: %w",
			maxResidual, p.resTol, ErrInternalFailure)
	}

	return nil
}

// Close releases the transform plan and scratch buffer. Close is
// idempotent; the plan must not be executed afterwards.
func (p *IwfacPlan[T]) Close() error {
	if p == nil || p.fft == nil {
		return nil
	}

	err := p.fft.Close()
	p.fft = nil
	p.sbuf = nil

	return err
}

// Iwfac is the one-shot inverse factorization: it builds a plan, executes
// it once and releases it.
func Iwfac[T Sample](gf []complex128, L, R, a, M int, g []T) error {
	if gf == nil || g == nil {
		return fmt.Errorf("iwfac: %w", ErrNilArg)
	}

	if R <= 0 {
		return fmt.Errorf("iwfac: R=%d: %w", R, ErrNotPositiveArg)
	}

	plan, err := NewIwfacPlan[T](L, a, M)
	if err != nil {
		return fmt.Errorf("iwfac: init: %w", err)
	}
	defer plan.Close()

	return plan.Execute(gf, R, g)
}
