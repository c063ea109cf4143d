package core

import (
	"sync"
)

// Configure registers options for every assertion later started with Expect(t, ...).
// Calls accumulate. If the TestReporter supports Cleanup (like *testing.T), the options
// are dropped when the test completes.
func Configure(t TestReporter, opts ...Option) {
	registryMu.Lock()
	defer registryMu.Unlock()

	_, known := registry[t]
	registry[t] = append(registry[t], opts...)

	if known {
		return
	}

	if cr, ok := t.(cleanupRegistrar); ok {
		cr.Cleanup(func() {
			registryMu.Lock()
			delete(registry, t)
			registryMu.Unlock()
		})
	}
}

// registeredOptions returns a copy of the options registered for t.
func registeredOptions(t TestReporter) []Option {
	registryMu.Lock()
	defer registryMu.Unlock()

	opts := registry[t]

	return append(make([]Option, 0, len(opts)), opts...)
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Package-level registry is intentional for per-test settings
	registry = make(map[TestReporter][]Option)
	//nolint:gochecknoglobals // Mutex for registry
	registryMu sync.Mutex
)

// cleanupRegistrar is the interface needed for registering cleanup functions.
// This is satisfied by *testing.T and *testing.B.
type cleanupRegistrar interface {
	Cleanup(cleanupFunc func())
}
