// Package stft computes magnitude spectrograms of fixed sample buffers.
//
// An Analyzer slides a window of length L with hop H over the input, tapers
// each window with cached coefficients, transforms it in place through a
// transform.Transform of size L and reduces the bins to magnitudes. Nothing
// is allocated per window: Frames yields one reused magnitude buffer, and
// Analyze sizes the whole spectrogram before the first window.
//
// The defaults reproduce the 16-point, hop-8 Hamming analysis used for
// accelerometer captures: a periodic denominator (D = L) and coefficient m
// paired with sample L-1-m. Both conventions are configurable.
package stft
