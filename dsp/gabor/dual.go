package gabor

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// condLimit classifies a factor slab whose Gram matrix conditioning is
// beyond recovery as not describing a frame.
const condLimit = 1e14

// DualFac replaces each p-by-q factor slab with its canonical dual:
// Gd = (G G*)^-1 G, the Moore-Penrose solution that makes (g, gd) a
// biorthogonal pair on the lattice. Each of the c*d*R slabs is solved
// independently, so every window of a multi-window system receives its own
// canonical dual.
//
// gdf may alias gf: each slab is fully read before it is written.
func DualFac(gf []complex128, L, R, a, M int, gdf []complex128) error {
	if gf == nil || gdf == nil {
		return fmt.Errorf("dualfac: %w", ErrNilArg)
	}

	if R <= 0 {
		return fmt.Errorf("dualfac: R=%d: %w", R, ErrNotPositiveArg)
	}

	lat, err := NewLattice(L, a, M)
	if err != nil {
		return fmt.Errorf("dualfac: %w", err)
	}

	if len(gf) < L*R || len(gdf) < L*R {
		return fmt.Errorf("dualfac: buffers must hold L*R=%d elements: %w", L*R, ErrBadArg)
	}

	fac := lat.Factor(R)
	p, q, c, d := lat.P, lat.Q, lat.C, lat.D

	// The Gram matrix S = G G* is Hermitian positive definite for a frame.
	// Writing S = A + iB, the real matrix [[A, -B], [B, A]] of order 2p is
	// symmetric positive definite and a complex solve S x = b becomes a
	// real solve on stacked [Re; Im] columns.
	gram := mat.NewSymDense(2*p, nil)
	rhs := mat.NewDense(2*p, q, nil)
	sol := mat.NewDense(2*p, q, nil)

	var chol mat.Cholesky

	for r := 0; r < c; r++ {
		for s := 0; s < d; s++ {
			for w := 0; w < R; w++ {
				base := fac.Base(r, w, 0, 0) + s*fac.SStride
				slab := gf[base : base+p*q]

				for i := 0; i < p; i++ {
					for j := i; j < p; j++ {
						var sum complex128
						for l := 0; l < q; l++ {
							sum += slab[l*p+i] * cmplx.Conj(slab[l*p+j])
						}

						re, im := real(sum), imag(sum)
						if i == j {
							im = 0
						}

						gram.SetSym(i, j, re)
						gram.SetSym(p+i, p+j, re)
						gram.SetSym(i, p+j, -im)
						if i != j {
							gram.SetSym(j, p+i, im)
						}
					}
				}

				for i := 0; i < p; i++ {
					for l := 0; l < q; l++ {
						v := slab[l*p+i]
						rhs.Set(i, l, real(v))
						rhs.Set(p+i, l, imag(v))
					}
				}

				if ok := chol.Factorize(gram); !ok {
					return fmt.Errorf("dualfac: singular frame operator slab (r=%d s=%d w=%d): %w", r, s, w, ErrNotAFrame)
				}

				if cond := chol.Cond(); cond > condLimit {
					return fmt.Errorf("dualfac: frame operator slab condition %.3g (r=%d s=%d w=%d): %w", cond, r, s, w, ErrNotAFrame)
				}

				if err := chol.SolveTo(sol, rhs); err != nil {
					return fmt.Errorf("dualfac: %v: %w", err, ErrNotAFrame)
				}

				out := gdf[base : base+p*q]
				for i := 0; i < p; i++ {
					for l := 0; l < q; l++ {
						out[l*p+i] = complex(sol.At(i, l), sol.At(p+i, l))
					}
				}
			}
		}
	}

	return nil
}

// DualLong computes the canonical dual window of the R long windows in g,
// writing the result to gd. Both arrays have shape (L, R) with the signal
// axis contiguous.
func DualLong[T Sample](g []T, L, R, a, M int, gd []T) error {
	if g == nil || gd == nil {
		return fmt.Errorf("dual long: %w", ErrNilArg)
	}

	if R <= 0 {
		return fmt.Errorf("dual long: R=%d: %w", R, ErrNotPositiveArg)
	}

	if _, err := NewLattice(L, a, M); err != nil {
		return fmt.Errorf("dual long: %w", err)
	}

	if len(g) < L*R || len(gd) < L*R {
		return fmt.Errorf("dual long: buffers must hold L*R=%d elements: %w", L*R, ErrBadArg)
	}

	gf := make([]complex128, L*R)
	gdf := make([]complex128, L*R)

	if err := Wfac(g, L, R, a, M, gf); err != nil {
		return fmt.Errorf("dual long: %w", err)
	}

	if err := DualFac(gf, L, R, a, M, gdf); err != nil {
		return fmt.Errorf("dual long: %w", err)
	}

	if err := Iwfac(gdf, L, R, a, M, gd); err != nil {
		return fmt.Errorf("dual long: %w", err)
	}

	return nil
}

// DualFIR computes the canonical dual of a FIR window of length gl on the
// (a, M) lattice over length L, restricted to gdl samples. The window is
// lifted with Fir2Long, the long dual is computed in place on the
// temporary, and Long2Fir restricts it back. gd may equal g when
// gdl <= gl.
func DualFIR[T Sample](g []T, gl, L, a, M, gdl int, gd []T) error {
	if g == nil || gd == nil {
		return fmt.Errorf("dual fir: %w", ErrNilArg)
	}

	if gl <= 0 {
		return fmt.Errorf("dual fir: gl=%d: %w", gl, ErrNotPositiveArg)
	}

	if gdl <= 0 {
		return fmt.Errorf("dual fir: gdl=%d: %w", gdl, ErrNotPositiveArg)
	}

	if L <= 0 {
		return fmt.Errorf("dual fir: L=%d: %w", L, ErrNotPositiveArg)
	}

	if L < gl || L < gdl {
		return fmt.Errorf("dual fir: L=%d must satisfy L>=gl=%d and L>=gdl=%d: %w", L, gl, gdl, ErrBadArg)
	}

	if len(g) < gl || len(gd) < gdl {
		return fmt.Errorf("dual fir: window buffers too short: %w", ErrBadArg)
	}

	tmp, err := Fir2Long(g, gl, L)
	if err != nil {
		return fmt.Errorf("dual fir: %w", err)
	}

	if err := DualLong(tmp, L, 1, a, M, tmp); err != nil {
		return fmt.Errorf("dual fir: %w", err)
	}

	if err := Long2Fir(tmp, L, gdl, gd); err != nil {
		return fmt.Errorf("dual fir: %w", err)
	}

	return nil
}
