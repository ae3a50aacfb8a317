package composition

import "sort"

// ExpansionSet tracks which groups are expanded. It is independent of the
// selection: an item may be selected without being expanded.
type ExpansionSet struct {
	ids       map[string]struct{}
	exclusive bool
}

// NewExpansionSet creates a set with the given ids expanded. In exclusive
// mode at most one id is expanded; only the first initial id is kept.
func NewExpansionSet(exclusive bool, ids ...string) *ExpansionSet {
	s := &ExpansionSet{ids: make(map[string]struct{}), exclusive: exclusive}
	for _, id := range ids {
		if exclusive && len(s.ids) > 0 {
			break
		}
		s.ids[id] = struct{}{}
	}
	return s
}

// Has reports whether id is expanded.
func (s *ExpansionSet) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Toggle flips id and reports whether it is now expanded. In exclusive
// mode, expanding id collapses the others; their ids are returned sorted.
func (s *ExpansionSet) Toggle(id string) (expanded bool, collapsed []string) {
	if s.Has(id) {
		delete(s.ids, id)
		return false, nil
	}
	if s.exclusive {
		collapsed = s.IDs()
		s.ids = make(map[string]struct{})
	}
	s.ids[id] = struct{}{}
	return true, collapsed
}

// Retain drops ids not in keep.
func (s *ExpansionSet) Retain(keep []string) {
	allowed := make(map[string]bool, len(keep))
	for _, id := range keep {
		allowed[id] = true
	}
	for id := range s.ids {
		if !allowed[id] {
			delete(s.ids, id)
		}
	}
}

// IDs returns the expanded ids sorted.
func (s *ExpansionSet) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of expanded ids.
func (s *ExpansionSet) Len() int {
	return len(s.ids)
}
