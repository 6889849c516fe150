// Package window generates analysis window coefficients.
//
// Coefficients are produced from the position x = n/D, where D is L-1 for the
// symmetric form and L for the periodic form (WithPeriodic). Periodic windows
// are the usual choice for framed spectral analysis.
package window
