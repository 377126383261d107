package usecase

// seenSet remembers the most recent keys up to a fixed capacity, evicting the
// oldest first.
type seenSet struct {
	limit int
	keys  map[string]struct{}
	order []string
}

func newSeenSet(limit int) *seenSet {
	return &seenSet{
		limit: limit,
		keys:  make(map[string]struct{}, limit),
	}
}

func (s *seenSet) has(key string) bool {
	_, ok := s.keys[key]
	return ok
}

func (s *seenSet) add(key string) {
	if s.has(key) {
		return
	}
	s.keys[key] = struct{}{}
	s.order = append(s.order, key)
	for len(s.order) > s.limit {
		delete(s.keys, s.order[0])
		s.order = s.order[1:]
	}
}
