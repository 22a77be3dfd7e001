package gabor_test

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-gabor/dsp/gabor"
	"github.com/cwbudde/algo-gabor/dsp/window"
	"github.com/cwbudde/algo-gabor/internal/testutil"
)

func TestFir2LongPlacement(t *testing.T) {
	g := []float64{1, 2, 3, 4, 5}

	long, err := gabor.Fir2Long(g, 5, 12)
	if err != nil {
		t.Fatalf("Fir2Long failed: %v", err)
	}

	want := []float64{1, 2, 3, 0, 0, 0, 0, 0, 0, 0, 4, 5}
	testutil.RequireSliceNearlyEqual(t, long, want, 0)
}

func TestFirLongRoundTrip(t *testing.T) {
	for _, gl := range []int{6, 7} {
		g := testutil.Noise(int64(gl), 1, gl)

		long, err := gabor.Fir2Long(g, gl, 24)
		if err != nil {
			t.Fatalf("Fir2Long(gl=%d) failed: %v", gl, err)
		}

		back := make([]float64, gl)
		if err := gabor.Long2Fir(long, 24, gl, back); err != nil {
			t.Fatalf("Long2Fir(gl=%d) failed: %v", gl, err)
		}

		testutil.RequireSliceNearlyEqual(t, back, g, 0)
	}
}

func TestDualFIRHammingReference(t *testing.T) {
	const (
		gl = 7
		L  = 24
		a  = 3
		M  = 8
	)

	g := window.Generate(window.Hamming, gl)
	gd := make([]float64, gl)

	if err := gabor.DualFIR(g, gl, L, a, M, gl, gd); err != nil {
		t.Fatalf("DualFIR failed: %v", err)
	}

	// Reference values from solving the frame operator directly.
	want := []float64{
		0.12117948, 0.11809667, 0.06251033, 0.01521461,
		0.01521461, 0.06251033, 0.11809667,
	}
	testutil.RequireSliceNearlyEqual(t, gd, want, 1e-7)
}

func TestDualFIRMatchesDualLong(t *testing.T) {
	const (
		gl = 7
		L  = 24
		a  = 3
		M  = 8
	)

	// The window is short enough relative to the lattice that its long
	// dual is supported on the same gl samples, so restricting loses
	// nothing and the two drivers agree exactly.
	g := window.Generate(window.Hamming, gl)

	gdFIR := make([]float64, gl)
	if err := gabor.DualFIR(g, gl, L, a, M, gl, gdFIR); err != nil {
		t.Fatalf("DualFIR failed: %v", err)
	}

	long, err := gabor.Fir2Long(g, gl, L)
	if err != nil {
		t.Fatalf("Fir2Long failed: %v", err)
	}

	gdLong := make([]float64, L)
	if err := gabor.DualLong(long, L, 1, a, M, gdLong); err != nil {
		t.Fatalf("DualLong failed: %v", err)
	}

	lifted, err := gabor.Fir2Long(gdFIR, gl, L)
	if err != nil {
		t.Fatalf("Fir2Long of the FIR dual failed: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, lifted, gdLong, 1e-12)
}

func TestDualFIRInPlace(t *testing.T) {
	const (
		gl = 7
		L  = 24
		a  = 3
		M  = 8
	)

	g := window.Generate(window.Hamming, gl)
	gd := make([]float64, gl)

	if err := gabor.DualFIR(g, gl, L, a, M, gl, gd); err != nil {
		t.Fatalf("DualFIR failed: %v", err)
	}

	inPlace := make([]float64, gl)
	copy(inPlace, g)

	if err := gabor.DualFIR(inPlace, gl, L, a, M, gl, inPlace); err != nil {
		t.Fatalf("DualFIR in place failed: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, inPlace, gd, 0)
}

func TestFirArgumentErrors(t *testing.T) {
	g := make([]float64, 8)
	gd := make([]float64, 8)

	t.Run("fir2long", func(t *testing.T) {
		if _, err := gabor.Fir2Long[float64](nil, 8, 16); !errors.Is(err, gabor.ErrNilArg) {
			t.Fatalf("Fir2Long(nil) = %v, want ErrNilArg", err)
		}

		if _, err := gabor.Fir2Long(g, 0, 16); !errors.Is(err, gabor.ErrNotPositiveArg) {
			t.Fatalf("Fir2Long(gl=0) = %v, want ErrNotPositiveArg", err)
		}

		if _, err := gabor.Fir2Long(g, 8, 4); !errors.Is(err, gabor.ErrBadArg) {
			t.Fatalf("Fir2Long(L<gl) = %v, want ErrBadArg", err)
		}
	})

	t.Run("long2fir", func(t *testing.T) {
		long := make([]float64, 16)

		if err := gabor.Long2Fir[float64](nil, 16, 8, gd); !errors.Is(err, gabor.ErrNilArg) {
			t.Fatalf("Long2Fir(nil) = %v, want ErrNilArg", err)
		}

		if err := gabor.Long2Fir(long, 16, 0, gd); !errors.Is(err, gabor.ErrNotPositiveArg) {
			t.Fatalf("Long2Fir(gl=0) = %v, want ErrNotPositiveArg", err)
		}

		if err := gabor.Long2Fir(long, 8, 16, gd); !errors.Is(err, gabor.ErrBadArg) {
			t.Fatalf("Long2Fir(gl>L) = %v, want ErrBadArg", err)
		}
	})

	t.Run("dualfir", func(t *testing.T) {
		if err := gabor.DualFIR[float64](nil, 8, 16, 2, 4, 8, gd); !errors.Is(err, gabor.ErrNilArg) {
			t.Fatalf("DualFIR(nil) = %v, want ErrNilArg", err)
		}

		if err := gabor.DualFIR(g, 0, 16, 2, 4, 8, gd); !errors.Is(err, gabor.ErrNotPositiveArg) {
			t.Fatalf("DualFIR(gl=0) = %v, want ErrNotPositiveArg", err)
		}

		if err := gabor.DualFIR(g, 8, 16, 2, 4, 0, gd); !errors.Is(err, gabor.ErrNotPositiveArg) {
			t.Fatalf("DualFIR(gdl=0) = %v, want ErrNotPositiveArg", err)
		}

		if err := gabor.DualFIR(g, 8, 4, 2, 4, 8, gd); !errors.Is(err, gabor.ErrBadArg) {
			t.Fatalf("DualFIR(L<gl) = %v, want ErrBadArg", err)
		}
	})
}
