// Package window provides the FIR window catalogue used to seed Gabor
// frames.
//
// All windows are generated in zero-centered periodic form ("whole-point
// even"): the peak sits at index 0 and the left half of the window wraps
// around to the end of the buffer. This is the alignment the Gabor
// factorization expects for windows centered on the natural origin;
// gabor.Fir2Long preserves it when lifting a short window to full length.
package window
