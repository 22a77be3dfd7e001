// Package gabor computes canonical dual windows for Gabor frames on
// discrete, finite-length signals.
//
// A Gabor system samples the time-frequency plane of a length-L signal at
// time shifts a and M frequency channels. Analyzing with a window g and
// synthesizing with its canonical dual gd reconstructs every signal exactly
// whenever the system forms a frame (which requires M >= a and lcm(a,M)
// dividing L).
//
// The dual is obtained through the Zak-style window factorization: Wfac
// reshapes the window into a (d, p, q, c, R) tensor of small slabs that
// block-diagonalize the frame operator, DualFac inverts each slab through
// its Gram matrix, and Iwfac maps the result back to the time domain.
// DualLong composes the three steps for full-length windows; DualFIR lifts
// a short window to length L, computes the dual, and restricts it back.
//
// Real and complex windows share one pipeline: the Sample type parameter
// selects the regime, while factor-domain data is always complex.
package gabor
