package fftplan

import (
	"gonum.org/v1/gonum/dsp/fourier"
)

// gonumPlan wraps gonum's mixed-radix complex transform. It handles every
// positive length, so it backs all sizes algo-fft rejects.
type gonumPlan struct {
	n       int
	dir     Direction
	fft     *fourier.CmplxFFT
	scratch []complex128
}

func newGonumPlan(n int, dir Direction) *gonumPlan {
	return &gonumPlan{
		n:       n,
		dir:     dir,
		fft:     fourier.NewCmplxFFT(n),
		scratch: make([]complex128, n),
	}
}

func (p *gonumPlan) Len() int { return p.n }

func (p *gonumPlan) Execute(buf []complex128) error {
	if p.fft == nil {
		return ErrClosed
	}

	if buf == nil {
		return ErrNilBuffer
	}

	if len(buf) < p.n {
		return ErrLengthMismatch
	}

	// Coefficients/Sequence make no aliasing promise, so transform through
	// the scratch buffer. Sequence is the unnormalized positive-exponent
	// transform, matching the plan contract directly.
	if p.dir == Forward {
		p.fft.Coefficients(p.scratch, buf[:p.n])
	} else {
		p.fft.Sequence(p.scratch, buf[:p.n])
	}

	copy(buf[:p.n], p.scratch)

	return nil
}

func (p *gonumPlan) Close() error {
	p.fft = nil
	p.scratch = nil

	return nil
}
