// Package transform defines the forward-FFT capability consumed by the
// spectral analyzer, together with backends over algo-fft, gofft and gonum.
//
// A Transform works in place on exactly Len() complex values and reports
// the bin Ordering of its output. Backends are obtained through a Factory so
// that analyzers can be configured with any of them, or with a size
// whitelist emulating a fixed-size deployment (Restrict).
package transform
