package provider

import (
	"fmt"
	"sync"
	"time"

	"rentdash-backend/internal/logger"
	"rentdash-backend/internal/provider/memory"
)

// Type selects a DataProvider implementation.
type Type string

const (
	// TypeMemory is the volatile in-process reference implementation.
	TypeMemory Type = "memory"
	// TypeAPI is reserved for a network-backed implementation. Until one
	// exists, requesting it serves the memory provider with a warning.
	TypeAPI Type = "api"
)

// Factory hands out the process-wide DataProvider instance. It is built
// once in main and injected into every consumer, so all of them observe
// the same shared state. The first Provider call constructs the
// configured implementation; later calls return the cached instance
// until SetType or Reset discards it.
type Factory struct {
	defaultType Type
	latency     time.Duration

	mu       sync.Mutex
	current  Type
	instance DataProvider
}

// NewFactory creates a factory that serves providers of the given type.
// An empty type means TypeMemory. The latency is passed through to the
// memory provider as its simulated storage round-trip delay.
func NewFactory(t Type, latency time.Duration) *Factory {
	if t == "" {
		t = TypeMemory
	}
	return &Factory{defaultType: t, latency: latency, current: t}
}

// Provider returns the cached instance, constructing it first if needed.
func (f *Factory) Provider() (DataProvider, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.instance == nil {
		p, err := f.build(f.current)
		if err != nil {
			return nil, err
		}
		f.instance = p
	}
	return f.instance, nil
}

// SetType switches the provider type. The cached instance is discarded
// and a fresh one is constructed on the next Provider call. Unrecognized
// types fail fast and leave the factory untouched.
func (f *Factory) SetType(t Type) error {
	switch t {
	case TypeMemory, TypeAPI:
	default:
		return fmt.Errorf("unknown provider type: %q", t)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = t
	f.instance = nil
	return nil
}

// Reset discards the cached instance and reverts to the default type.
// Meant for test isolation between otherwise-independent cases.
func (f *Factory) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = f.defaultType
	f.instance = nil
}

func (f *Factory) build(t Type) (DataProvider, error) {
	switch t {
	case TypeMemory:
		return memory.New(memory.WithLatency(f.latency)), nil
	case TypeAPI:
		logger.Warn("api provider not implemented, serving memory provider")
		return memory.New(memory.WithLatency(f.latency)), nil
	default:
		return nil, fmt.Errorf("unknown provider type: %q", t)
	}
}
