// Package iir evaluates causal linear constant-coefficient difference
// equations in direct form:
//
//	y[n] = sum_{k=0}^{P-1} B[k]*x[n-k] - sum_{k=1}^{Q-1} A[k]*y[n-k]
//
// Inputs and outputs before n = 0 are zero. A [Filter] owns its history
// exclusively: the feed-forward half is a [fir.Filter] delay line and the
// feedback half is a ring of the last Q-1 outputs. [Apply] computes the same
// recurrence statelessly over a whole block, reading the output history
// back from dst.
//
// The recurrence is evaluated strictly left to right. Non-finite values are
// not detected and propagate into the output. Coefficients are supplied by
// the caller; this package does no filter design.
package iir
