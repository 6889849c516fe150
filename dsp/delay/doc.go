// Package delay provides the fixed-size circular sample history shared by
// the FIR and IIR filter runtimes.
package delay
