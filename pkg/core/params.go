package core

import "sort"

// Params is the shared parameter store for one run: a flat mapping from
// parameter name to an opaque value (string, number, or a handle such as the
// log collector). No entry is mutated after dispatch begins, which is what
// makes lock-free sharing across workers safe.
type Params map[string]any

// Lookup returns the value bound to key.
func (p Params) Lookup(key string) (any, bool) {
	value, ok := p[key]
	return value, ok
}

// Missing returns the subset of keys absent from the store, in sorted order.
func (p Params) Missing(keys []string) []string {
	var missing []string
	for _, key := range keys {
		if _, ok := p[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}
