// Package buffer provides the fixed-capacity sample buffer that sits on the
// acquisition side of the engine boundary.
//
// A [Fixed] buffer allocates its backing array once, at construction. It is
// populated by an acquisition collaborator ([Fixed.Append], [Fixed.Write],
// [Fixed.Fill]) and then sealed. After [Fixed.Seal] the samples are
// read-only for the engine, which borrows them through [Fixed.Samples].
// The buffer never grows.
package buffer
