package fftplan

import (
	algofft "github.com/cwbudde/algo-fft"
)

// transformer matches the dst/src transform methods of algo-fft plans.
type transformer interface {
	Forward(dst, src []complex128) error
	Inverse(dst, src []complex128) error
}

// algoPlan wraps an algo-fft plan. algo-fft only accepts power-of-two
// lengths, which is where its codelets beat the generic fallback.
type algoPlan struct {
	n    int
	dir  Direction
	plan transformer
}

func newAlgoPlan(n int, dir Direction) (*algoPlan, error) {
	p, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, err
	}

	return &algoPlan{n: n, dir: dir, plan: p}, nil
}

func (p *algoPlan) Len() int { return p.n }

func (p *algoPlan) Execute(buf []complex128) error {
	if p.plan == nil {
		return ErrClosed
	}

	if buf == nil {
		return ErrNilBuffer
	}

	if len(buf) < p.n {
		return ErrLengthMismatch
	}

	data := buf[:p.n]
	if p.dir == Forward {
		return p.plan.Forward(data, data)
	}

	if err := p.plan.Inverse(data, data); err != nil {
		return err
	}

	// algo-fft normalizes the inverse transform by 1/n; the plan contract
	// is unnormalized in both directions.
	scale := complex(float64(p.n), 0)
	for i := range data {
		data[i] *= scale
	}

	return nil
}

func (p *algoPlan) Close() error {
	p.plan = nil

	return nil
}
