package numberid

import "sort"

// Registry maps classifier names to classifiers. Registering an existing name
// replaces the previous classifier.
type Registry struct {
	entries map[string]Classifier
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Classifier)}
}

// DefaultRegistry returns a registry with the bits, bytes, prime, ec, hash
// and match classifiers. Output formats and the SSH moduli lookup are added
// by the caller.
func DefaultRegistry(cfg Config) *Registry {
	r := NewRegistry()
	r.Register(NameBits, BitLength())
	r.Register(NameBytes, ByteLength())
	r.Register(NamePrime, Primality())
	r.Register(NameEC, ECMatch(cfg.logger()))
	r.Register(NameHash, DigestClass())
	r.Register(NameMatch, DatabaseMatch(cfg))
	return r
}

// Register inserts or replaces the classifier stored under name.
func (r *Registry) Register(name string, c Classifier) {
	r.entries[name] = c
}

// Lookup returns the classifier stored under name.
func (r *Registry) Lookup(name string) (Classifier, bool) {
	c, ok := r.entries[name]
	return c, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered classifiers.
func (r *Registry) Len() int {
	return len(r.entries)
}
