// Package fir provides a direct-form FIR filter runtime.
//
// A [Filter] applies a set of pre-computed coefficients to an input stream
// using a circular-buffer delay line, with the delay line zeroed before the
// first sample. It doubles as the feed-forward half of the direct-form IIR
// engine in dsp/filter/iir.
//
// This package provides the processing runtime only. Coefficients are
// always supplied by the caller.
package fir
