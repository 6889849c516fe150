package core

// Float is the sample type constraint shared by the engine packages.
// float32 is the embedded contract; float64 is supported for host-side
// analysis and cross-checking.
type Float interface {
	~float32 | ~float64
}
