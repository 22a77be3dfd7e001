package gabor_test

import (
	"math"
	"math/cmplx"
)

// Naive O(L*M*N) Gabor transform pair used as the reference in the dual
// window tests. Analysis correlates the signal with modulated translates
// of g; synthesis overlays modulated translates of gd weighted by the
// coefficients. With gd the canonical dual of g the pair reconstructs
// exactly.

func dgt(f, g []complex128, L, a, M int) []complex128 {
	N := L / a
	c := make([]complex128, M*N)

	for n := 0; n < N; n++ {
		for m := 0; m < M; m++ {
			var sum complex128
			for l := 0; l < L; l++ {
				phase := -2 * math.Pi * float64(m) * float64(l) / float64(M)
				sum += f[l] * cmplx.Conj(g[mod(l-n*a, L)]) * cmplx.Exp(complex(0, phase))
			}

			c[m+M*n] = sum
		}
	}

	return c
}

func idgt(c, gd []complex128, L, a, M int) []complex128 {
	N := L / a
	f := make([]complex128, L)

	for l := 0; l < L; l++ {
		var sum complex128
		for n := 0; n < N; n++ {
			for m := 0; m < M; m++ {
				phase := 2 * math.Pi * float64(m) * float64(l) / float64(M)
				sum += c[m+M*n] * gd[mod(l-n*a, L)] * cmplx.Exp(complex(0, phase))
			}
		}

		f[l] = sum
	}

	return f
}

func mod(x, n int) int {
	r := x % n
	if r < 0 {
		r += n
	}

	return r
}

func toComplex(data []float64) []complex128 {
	out := make([]complex128, len(data))
	for i, v := range data {
		out[i] = complex(v, 0)
	}

	return out
}
