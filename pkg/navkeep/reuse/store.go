package reuse

import "sort"

// Store maps route identities to detached view handles. Handles are opaque:
// the store never inspects them, and entries are only replaced, never evicted.
type Store[H any] struct {
	handles map[string]H
}

// NewStore creates an empty store.
func NewStore[H any]() *Store[H] {
	return &Store[H]{
		handles: make(map[string]H),
	}
}

// Set records handle under key, replacing any previous handle.
func (s *Store[H]) Set(key string, handle H) {
	s.handles[key] = handle
}

// Get returns the handle stored under key. The second return value is false
// when nothing was ever stored there.
func (s *Store[H]) Get(key string) (H, bool) {
	handle, exists := s.handles[key]
	return handle, exists
}

// Has reports whether a handle is stored under key.
func (s *Store[H]) Has(key string) bool {
	_, exists := s.handles[key]
	return exists
}

// Len returns the number of stored handles.
func (s *Store[H]) Len() int {
	return len(s.handles)
}

// Keys returns the stored identities in sorted order.
func (s *Store[H]) Keys() []string {
	keys := make([]string, 0, len(s.handles))
	for k := range s.handles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
