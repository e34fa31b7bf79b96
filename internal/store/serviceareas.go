package store

import (
	"sort"
	"sync"
)

// ServiceAreas is the registry of serviceable pincodes. It is a plain set:
// no format or region validation happens here, that policy belongs to the
// admin control plane.
type ServiceAreas struct {
	mu    sync.RWMutex
	codes map[string]struct{}
}

// NewServiceAreas creates a registry seeded with the given pincodes
func NewServiceAreas(codes []string) *ServiceAreas {
	s := &ServiceAreas{codes: make(map[string]struct{}, len(codes))}
	for _, code := range codes {
		s.codes[code] = struct{}{}
	}
	return s
}

// IsServiceable reports whether the pincode is in the registry
func (s *ServiceAreas) IsServiceable(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.codes[code]
	return ok
}

// Add inserts a pincode. It returns false when the code was already
// present, so callers can report the duplicate instead of silently
// swallowing it.
func (s *ServiceAreas) Add(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.codes[code]; ok {
		return false
	}
	s.codes[code] = struct{}{}
	return true
}

// Remove deletes a pincode, returning false when it was not present
func (s *ServiceAreas) Remove(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.codes[code]; !ok {
		return false
	}
	delete(s.codes, code)
	return true
}

// List returns all pincodes in sorted order
func (s *ServiceAreas) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.codes))
	for code := range s.codes {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of registered pincodes
func (s *ServiceAreas) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.codes)
}
