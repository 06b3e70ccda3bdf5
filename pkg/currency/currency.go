// Package currency provides the catalog of currency codes the bot accepts.
//
// A code is considered valid when it is either a known ISO-4217 currency or
// one of the extended codes (crypto, historical, regional) that the rate
// providers understand. The two recognition sources are independent: a code
// missing from one list may still be accepted through the other.
package currency

import (
	"sync"
)

// Meta describes a currency known to the catalog.
type Meta struct {
	Code     string
	Name     string
	Symbol   string
	Decimals int
}

// Registry is a thread-safe catalog of recognized currency codes.
type Registry struct {
	mu       sync.RWMutex
	iso      map[string]Meta
	extended map[string]struct{}
}

// NewRegistry creates a registry pre-populated with the embedded ISO-4217
// table and the extended provider-supported code list.
func NewRegistry() *Registry {
	r := &Registry{
		iso:      make(map[string]Meta, len(isoCurrencies)),
		extended: make(map[string]struct{}, len(extendedCodes)),
	}
	for _, m := range isoCurrencies {
		r.iso[m.Code] = m
	}
	for _, code := range extendedCodes {
		r.extended[code] = struct{}{}
	}
	return r
}

// IsValid reports whether code is a recognized currency. The code must
// already be uppercased by the caller.
func (r *Registry) IsValid(code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.iso[code]; ok {
		return true
	}
	_, ok := r.extended[code]
	return ok
}

// Get returns ISO metadata for the given code. Extended codes carry no
// metadata and report false.
func (r *Registry) Get(code string) (Meta, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.iso[code]
	return m, ok
}

// Register adds or updates an ISO currency in the catalog.
func (r *Registry) Register(m Meta) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.iso[m.Code] = m
}

// RegisterExtended adds a code to the extended provider-supported list.
func (r *Registry) RegisterExtended(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.extended[code] = struct{}{}
}

// ListSupported returns all recognized codes, ISO and extended combined.
func (r *Registry) ListSupported() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]string, 0, len(r.iso)+len(r.extended))
	for code := range r.iso {
		codes = append(codes, code)
	}
	for code := range r.extended {
		if _, dup := r.iso[code]; !dup {
			codes = append(codes, code)
		}
	}
	return codes
}

// Count returns the number of distinct recognized codes.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.iso)
	for code := range r.extended {
		if _, dup := r.iso[code]; !dup {
			n++
		}
	}
	return n
}
