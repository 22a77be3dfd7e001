// Package fftplan provides fixed-length, in-place, unnormalized complex DFT
// plans behind a small backend-agnostic contract.
//
// A plan is created for one transform length and one direction and owns any
// backend resources until Close. Power-of-two lengths go through algo-fft;
// all other lengths fall back to gonum's mixed-radix transform. Both
// directions are unnormalized: executing a forward plan followed by a
// backward plan multiplies the input by the transform length.
//
// Plans are not safe for concurrent use; callers that execute in parallel
// must create one plan per goroutine.
package fftplan
