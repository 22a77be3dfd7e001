package gabor

import "fmt"

// Lattice holds a validated Gabor lattice together with the
// number-theoretic quantities that drive the factorization layout.
type Lattice struct {
	L int // signal length
	A int // time shift
	M int // number of frequency channels
	B int // L / M
	C int // gcd(A, M)
	P int // A / C
	Q int // M / C
	D int // B / P, the factor transform length
	N int // L / A, number of time positions
}

// NewLattice validates (L, a, M) and derives the factorization parameters.
// a, M and L must be positive, L must be divisible by lcm(a, M), and M >= a
// must hold for the system to be a frame.
func NewLattice(L, a, M int) (Lattice, error) {
	if a <= 0 {
		return Lattice{}, fmt.Errorf("a=%d: %w", a, ErrNotPositiveArg)
	}

	if M <= 0 {
		return Lattice{}, fmt.Errorf("M=%d: %w", M, ErrNotPositiveArg)
	}

	minL := lcm(a, M)
	if L <= 0 || L%minL != 0 {
		return Lattice{}, fmt.Errorf("L=%d must be positive and divisible by lcm(a,M)=%d: %w", L, minL, ErrBadArg)
	}

	if M < a {
		return Lattice{}, fmt.Errorf("M=%d < a=%d: %w", M, a, ErrNotAFrame)
	}

	c := gcd(a, M)
	lat := Lattice{
		L: L,
		A: a,
		M: M,
		B: L / M,
		C: c,
		P: a / c,
		Q: M / c,
		N: L / a,
	}
	lat.D = lat.B / lat.P

	return lat, nil
}

// FactorLayout describes how the (d, p, q, c, R) factor tensor of an
// R-window system is laid out in a flat complex slice. Element
// (s, k, l, r, w) lives at Base(r, w, l, k) + s*SStride.
type FactorLayout struct {
	Lattice

	// R is the number of simultaneous windows.
	R int
	// SStride is the distance between consecutive s planes, in complex
	// elements.
	SStride int
}

// Factor returns the layout of the factor tensor for R windows.
func (lat Lattice) Factor(R int) FactorLayout {
	return FactorLayout{
		Lattice: lat,
		R:       R,
		SStride: lat.C * lat.P * lat.Q * R,
	}
}

// Len returns the total number of complex elements in the factor tensor.
func (f FactorLayout) Len() int { return f.L * f.R }

// Base returns the offset of element (s=0, k, l, r, w).
func (f FactorLayout) Base(r, w, l, k int) int {
	return r*f.P*f.Q*f.R + w*f.P*f.Q + l*f.P + k
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}

// positiveRem returns x mod n in [0, n).
func positiveRem(x, n int) int {
	r := x % n
	if r < 0 {
		r += n
	}

	return r
}
