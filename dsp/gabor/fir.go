package gabor

import "fmt"

// Fir2Long zero-extends a FIR window of length gl to length L, keeping it
// centered on the natural origin: the leading ceil(gl/2) samples stay at
// the start of the long buffer and the trailing floor(gl/2) samples wrap to
// its end.
func Fir2Long[T Sample](g []T, gl, L int) ([]T, error) {
	if g == nil {
		return nil, fmt.Errorf("fir2long: %w", ErrNilArg)
	}

	if gl <= 0 || L <= 0 {
		return nil, fmt.Errorf("fir2long: gl=%d, L=%d: %w", gl, L, ErrNotPositiveArg)
	}

	if L < gl {
		return nil, fmt.Errorf("fir2long: L=%d < gl=%d: %w", L, gl, ErrBadArg)
	}

	if len(g) < gl {
		return nil, fmt.Errorf("fir2long: window shorter than gl=%d: %w", gl, ErrBadArg)
	}

	out := make([]T, L)
	head := (gl + 1) / 2
	copy(out[:head], g[:head])
	copy(out[L-(gl-head):], g[head:gl])

	return out, nil
}

// Long2Fir restricts a long window of length L to gl samples by centered
// truncation, selecting the same index sets Fir2Long fills.
func Long2Fir[T Sample](g []T, L, gl int, gd []T) error {
	if g == nil || gd == nil {
		return fmt.Errorf("long2fir: %w", ErrNilArg)
	}

	if gl <= 0 || L <= 0 {
		return fmt.Errorf("long2fir: gl=%d, L=%d: %w", gl, L, ErrNotPositiveArg)
	}

	if L < gl {
		return fmt.Errorf("long2fir: L=%d < gl=%d: %w", L, gl, ErrBadArg)
	}

	if len(g) < L || len(gd) < gl {
		return fmt.Errorf("long2fir: window buffers too short: %w", ErrBadArg)
	}

	head := (gl + 1) / 2
	copy(gd[:head], g[:head])
	copy(gd[head:gl], g[L-(gl-head):L])

	return nil
}
