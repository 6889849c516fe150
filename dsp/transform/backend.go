package transform

import (
	"errors"
	"fmt"
)

// ErrUnknownBackend is returned by ByName for unrecognized backend names.
var ErrUnknownBackend = errors.New("transform: unknown backend")

// Backend names accepted by ByName.
const (
	BackendAlgo  = "algo"
	BackendGofft = "gofft"
	BackendGonum = "gonum"
)

// Backends lists the names accepted by ByName.
func Backends() []string {
	return []string{BackendAlgo, BackendGofft, BackendGonum}
}

// ByName returns the factory for a named backend in precision C. The
// complex128-only backends are narrowed for complex64 callers. An empty
// name selects algo-fft.
func ByName[C Complex](name string) (Factory[C], error) {
	var wide Factory[complex128]

	switch name {
	case "", BackendAlgo:
		return AlgoFactory[C](), nil
	case BackendGofft:
		wide = GofftFactory()
	case BackendGonum:
		wide = GonumFactory()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}

	var f any = wide

	var zero C
	if _, single := any(zero).(complex64); single {
		f = NarrowFactory(wide)
	}

	return f.(Factory[C]), nil
}
