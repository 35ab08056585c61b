// Package selection implements the favorites and compare sets: named
// sets of listing identifiers representing user intent. Sets hold ids
// only, never car records; membership is resolved against the catalog
// at render time.
package selection

// CompareLimit caps the compare set. Adding a 4th car is a silent no-op,
// a soft UI limit rather than an error.
const CompareLimit = 3

// Set is an ordered membership set of listing ids. A zero capacity
// means unbounded (favorites); a positive capacity bounds adds
// (compare). Toggle is the only mutation the UI drives; Remove backs
// the compare page's explicit remove button.
type Set struct {
	capacity int
	ids      []string
	members  map[string]struct{}
}

// NewFavorites returns an unbounded set.
func NewFavorites() *Set {
	return &Set{members: make(map[string]struct{})}
}

// NewCompare returns a set bounded to CompareLimit members.
func NewCompare() *Set {
	return &Set{capacity: CompareLimit, members: make(map[string]struct{})}
}

// Toggle removes id if present, otherwise attempts to add it. The
// returned bool reports whether id is a member afterwards. An add past
// a bounded set's capacity leaves the set unchanged.
func (s *Set) Toggle(id string) bool {
	if s.Has(id) {
		s.Remove(id)
		return false
	}
	if s.capacity > 0 && len(s.ids) >= s.capacity {
		return false
	}
	s.ids = append(s.ids, id)
	s.members[id] = struct{}{}
	return true
}

// Remove deletes id from the set if present.
func (s *Set) Remove(id string) {
	if !s.Has(id) {
		return
	}
	delete(s.members, id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
}

// Has reports membership in O(1).
func (s *Set) Has(id string) bool {
	_, ok := s.members[id]
	return ok
}

// IDs returns the members in insertion order. The compare table's
// column order follows this.
func (s *Set) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len reports the number of members.
func (s *Set) Len() int {
	return len(s.ids)
}
