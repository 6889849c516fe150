// Package frequency summarizes magnitude spectra.
//
// Frames are full-length magnitude spectra as produced by the stft package
// (L bins for an L-point transform of real data). Statistics are taken over
// the non-redundant half, bins 0 through L/2, and bin k maps to k*fs/L Hz.
package frequency
