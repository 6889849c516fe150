// Package signal generates the discrete test sequences used to exercise the
// filter and spectral engines: unit pulse, step and ramp, real exponentials,
// sinusoids and their sums.
//
// The sequence functions write into caller-owned slices and never allocate.
// Generator binds them to a sample rate so tones can be given in Hz.
package signal
