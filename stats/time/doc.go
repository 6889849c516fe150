// Package time computes time-domain statistics of sample buffers, used to
// compare a capture before and after filtering.
package time
