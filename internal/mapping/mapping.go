// Package mapping holds the WebdriverIO to Playwright command translation
// table. The registry is owned by whoever constructs it (one per server
// instance); Register is add-if-absent so an established translation never
// changes mid-session.
package mapping

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Mapping describes how one legacy command translates to the target dialect.
type Mapping struct {
	// Target is the Playwright call name. For browser.* commands this is a
	// dotted form such as "page.goto".
	Target string `json:"target" yaml:"target"`
	// OptionLiteral is an optional argument fragment inserted into the
	// rewritten call, e.g. "{ state: 'visible' }".
	OptionLiteral string `json:"optionLiteral,omitempty" yaml:"optionLiteral,omitempty"`
	// Description is a short human-readable note shown in change logs.
	Description string `json:"description" yaml:"description"`
}

// Registry is the command translation table. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Mapping
}

// NewRegistry creates a registry seeded with the static translation table.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]Mapping, len(seed))}
	for name, m := range seed {
		r.entries[name] = m
	}
	return r
}

// Lookup returns the mapping for a legacy command name.
func (r *Registry) Lookup(name string) (Mapping, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.entries[name]
	return m, ok
}

// Register adds a custom mapping. Existing entries, static or previously
// registered, are never overwritten: first writer wins and the call reports
// whether the entry was added.
func (r *Registry) Register(name string, m Mapping) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[name]; exists {
		return false
	}
	r.entries[name] = m
	return true
}

// Names returns all registered command names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered mappings.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// LoadFile registers custom mappings from a YAML file. The file maps legacy
// command names to Mapping entries. Returns how many entries were added;
// names already present are skipped, preserving monotonicity.
func (r *Registry) LoadFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read mappings file: %w", err)
	}

	var custom map[string]Mapping
	if err := yaml.Unmarshal(data, &custom); err != nil {
		return 0, fmt.Errorf("parse mappings file %s: %w", path, err)
	}

	added := 0
	for name, m := range custom {
		if r.Register(name, m) {
			added++
		}
	}
	return added, nil
}
