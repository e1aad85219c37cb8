package transcode

import "sync"

// registryKey identifies a converter by mode and normalized options.
type registryKey struct {
	mode Mode
	opts Options
}

var (
	registry   = make(map[registryKey]*Converter)
	registryMu sync.RWMutex
)

// Use returns a cached converter or builds a new one.
// Converters are cached by mode and the options that mode reads.
func Use(m Mode, opts Options) (*Converter, error) {
	key := registryKey{mode: m, opts: opts.forMode(m)}

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached, nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[key]; ok {
		return cached, nil
	}

	conv, err := NewConverter(m, opts)
	if err != nil {
		return nil, err
	}

	registry[key] = conv
	return conv, nil
}

// Reset clears the converter registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[registryKey]*Converter)
}
