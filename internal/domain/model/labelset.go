package model

// LabelSet is an insertion-ordered set of label names. Membership is
// set-semantic while iteration order is first-insertion order, which keeps
// triage output deterministic without ad hoc slice deduplication.
type LabelSet struct {
	names   []string
	present map[string]struct{}
}

// NewLabelSet returns a LabelSet seeded with the given names in order.
func NewLabelSet(names ...string) *LabelSet {
	s := &LabelSet{present: make(map[string]struct{})}
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add appends name if it is absent. Empty names are ignored.
func (s *LabelSet) Add(name string) {
	if name == "" {
		return
	}
	if s.present == nil {
		s.present = make(map[string]struct{})
	}
	if _, ok := s.present[name]; ok {
		return
	}
	s.present[name] = struct{}{}
	s.names = append(s.names, name)
}

// Has reports whether name is in the set.
func (s *LabelSet) Has(name string) bool {
	if s == nil || s.present == nil {
		return false
	}
	_, ok := s.present[name]
	return ok
}

// Names returns the members in insertion order. The returned slice is a copy.
func (s *LabelSet) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of members.
func (s *LabelSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}
