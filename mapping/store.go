package mapping

import (
	"maps"
	"net/url"
	"slices"
	"strings"
)

// Store is the flat interchange format: unique string keys to string values.
type Store map[string]string

// StoreFromValues keeps the first value of every key of v.
func StoreFromValues(v url.Values) Store {
	s := make(Store, len(v))
	for k, vals := range v {
		if len(vals) > 0 {
			s[k] = vals[0]
		}
	}

	return s
}

// ParseStore parses a URL-encoded query or form body.
func ParseStore(query string) (Store, error) {
	v, err := url.ParseQuery(strings.TrimPrefix(query, "?"))
	if err != nil {
		return nil, err
	}

	return StoreFromValues(v), nil
}

// Values converts the store to url.Values.
func (s Store) Values() url.Values {
	v := make(url.Values, len(s))
	for k, val := range s {
		v.Set(k, val)
	}

	return v
}

// Encode renders the store as a URL-encoded query sorted by key.
func (s Store) Encode() string {
	return s.Values().Encode()
}

// Keys returns the keys of the store in sorted order.
func (s Store) Keys() []string {
	return slices.Sorted(maps.Keys(s))
}

// Clone returns a shallow copy of the store.
func (s Store) Clone() Store {
	return maps.Clone(s)
}

// Indices is the stack of active collection indices, outermost first.
type Indices []int

// With returns a copy of ix extended by i. The receiver is never modified,
// so sibling iterations cannot observe each other's indices.
func (ix Indices) With(i int) Indices {
	next := make(Indices, len(ix)+1)
	copy(next, ix)
	next[len(ix)] = i

	return next
}
