package provider

// Store holds the ordered provider list for one session.
// It is owned by the UI loop and is not safe for concurrent use.
type Store struct {
	records []Record
}

// NewStore copies seed into a fresh store.
func NewStore(seed []Record) *Store {
	records := make([]Record, len(seed))
	copy(records, seed)
	return &Store{records: records}
}

// List returns a copy of the records in display order.
func (s *Store) List() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Len() int { return len(s.records) }

// Get returns the record with the given id.
func (s *Store) Get(id int) (Record, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.records[i], true
	}
	return Record{}, false
}

// Remove drops the record with the given id, keeping the order of the rest.
// It reports whether anything was removed; an unknown id is a no-op.
func (s *Store) Remove(id int) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return true
}

// ToggleSuspicious inverts the suspicious flag of the record with the given id.
func (s *Store) ToggleSuspicious(id int) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.records[i].Suspicious = !s.records[i].Suspicious
	return true
}

func (s *Store) indexOf(id int) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}
