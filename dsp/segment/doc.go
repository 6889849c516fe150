// Package segment splits a borrowed sample buffer into fixed-length analysis
// windows advancing by a hop.
//
// A [Segmenter] yields contiguous, non-owning views into the caller's
// buffer. It never copies and never allocates while iterating. Windows that
// would run past the end of the buffer are not emitted, so a buffer shorter
// than the window length produces no windows at all.
package segment
