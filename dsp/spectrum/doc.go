// Package spectrum reduces complex transform output to real spectra.
//
// The package does not implement an FFT. It converts real frames into the
// complex layout expected by a transform (Complexify), reduces complex bins to
// magnitudes with a preallocated Reducer, and evaluates single bins with the
// Goertzel recurrence. Reducer never allocates after construction.
package spectrum
