package gabor_test

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-gabor/dsp/gabor"
)

func TestNewLatticeDerivedParameters(t *testing.T) {
	tests := []struct {
		name          string
		L, a, M       int
		b, c, p, q, d int
		n             int
	}{
		{name: "coprime shifts", L: 12, a: 3, M: 4, b: 3, c: 1, p: 3, q: 4, d: 1, n: 4},
		{name: "shared factor", L: 24, a: 4, M: 6, b: 4, c: 2, p: 2, q: 3, d: 2, n: 6},
		{name: "long lattice", L: 120, a: 10, M: 12, b: 10, c: 2, p: 5, q: 6, d: 2, n: 12},
		{name: "integer oversampling", L: 36, a: 6, M: 12, b: 3, c: 6, p: 1, q: 2, d: 3, n: 6},
		{name: "critical sampling", L: 16, a: 4, M: 4, b: 4, c: 4, p: 1, q: 1, d: 4, n: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, err := gabor.NewLattice(tt.L, tt.a, tt.M)
			if err != nil {
				t.Fatalf("NewLattice(%d, %d, %d) failed: %v", tt.L, tt.a, tt.M, err)
			}

			if lat.B != tt.b || lat.C != tt.c || lat.P != tt.p || lat.Q != tt.q || lat.D != tt.d || lat.N != tt.n {
				t.Fatalf("got (b=%d c=%d p=%d q=%d d=%d n=%d), want (b=%d c=%d p=%d q=%d d=%d n=%d)",
					lat.B, lat.C, lat.P, lat.Q, lat.D, lat.N, tt.b, tt.c, tt.p, tt.q, tt.d, tt.n)
			}

			// The factorization identities must hold exactly.
			if lat.B != lat.P*lat.D {
				t.Fatalf("b=%d does not match p*d=%d", lat.B, lat.P*lat.D)
			}

			if lat.L != lat.C*lat.D*lat.P*lat.Q {
				t.Fatalf("L=%d does not match c*d*p*q=%d", lat.L, lat.C*lat.D*lat.P*lat.Q)
			}
		})
	}
}

func TestNewLatticeRejectsInvalidParameters(t *testing.T) {
	tests := []struct {
		name    string
		L, a, M int
		want    error
	}{
		{name: "zero shift", L: 12, a: 0, M: 4, want: gabor.ErrNotPositiveArg},
		{name: "negative shift", L: 12, a: -3, M: 4, want: gabor.ErrNotPositiveArg},
		{name: "zero channels", L: 12, a: 3, M: 0, want: gabor.ErrNotPositiveArg},
		{name: "zero length", L: 0, a: 3, M: 4, want: gabor.ErrBadArg},
		{name: "length not on lattice", L: 5, a: 2, M: 3, want: gabor.ErrBadArg},
		{name: "undersampled", L: 6, a: 3, M: 2, want: gabor.ErrNotAFrame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gabor.NewLattice(tt.L, tt.a, tt.M)
			if !errors.Is(err, tt.want) {
				t.Fatalf("NewLattice(%d, %d, %d) = %v, want %v", tt.L, tt.a, tt.M, err, tt.want)
			}
		})
	}
}

func TestFactorLayoutOffsets(t *testing.T) {
	lat, err := gabor.NewLattice(24, 4, 6)
	if err != nil {
		t.Fatalf("NewLattice failed: %v", err)
	}

	fac := lat.Factor(2)
	if fac.Len() != 48 {
		t.Fatalf("Len() = %d, want 48", fac.Len())
	}

	if fac.SStride != lat.C*lat.P*lat.Q*2 {
		t.Fatalf("SStride = %d, want %d", fac.SStride, lat.C*lat.P*lat.Q*2)
	}

	// Offsets of the s = 0 plane must tile [0, SStride) exactly once.
	seen := make(map[int]bool)
	for r := 0; r < lat.C; r++ {
		for w := 0; w < 2; w++ {
			for l := 0; l < lat.Q; l++ {
				for k := 0; k < lat.P; k++ {
					off := fac.Base(r, w, l, k)
					if off < 0 || off >= fac.SStride {
						t.Fatalf("Base(%d, %d, %d, %d) = %d out of range [0, %d)", r, w, l, k, off, fac.SStride)
					}

					if seen[off] {
						t.Fatalf("offset %d assigned twice", off)
					}

					seen[off] = true
				}
			}
		}
	}

	if len(seen) != fac.SStride {
		t.Fatalf("s = 0 plane covers %d offsets, want %d", len(seen), fac.SStride)
	}
}
