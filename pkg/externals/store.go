package externals

// Entry is a single external mapping
type Entry struct {
	Location string `yaml:"location" json:"location"`
	Path     string `yaml:"path" json:"path"`
}

// Store is an ordered collection of entries
type Store struct {
	entries []*Entry
}

// NewStore creates a store holding the given entries in order
func NewStore(entries ...Entry) *Store {
	s := &Store{}
	for _, e := range entries {
		s.Upsert(e.Location, e.Path)
	}
	return s
}

// Find returns the first entry whose path or location equals key.
func (s *Store) Find(key string) *Entry {
	for _, e := range s.entries {
		if e.Path == key || e.Location == key {
			return e
		}
	}
	return nil
}

// Match returns the entry an upsert of (location, path) would rewrite:
// the first entry matching path, else the first entry matching location.
func (s *Store) Match(location, path string) *Entry {
	if e := s.Find(path); e != nil {
		return e
	}
	return s.Find(location)
}

// Upsert updates the entry returned by Match in place, or appends a new one.
//
// When one entry matches the path and a different entry already holds the
// location, the path match wins and the other entry is left as it was.
func (s *Store) Upsert(location, path string) (entry *Entry, created bool) {
	entry = s.Match(location, path)
	if entry == nil {
		entry = &Entry{}
		s.entries = append(s.entries, entry)
		created = true
	}
	entry.Location = location
	entry.Path = path
	return entry, created
}

// Entries returns a copy of the entries in store order
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = *e
	}
	return out
}

// Len returns the number of entries
func (s *Store) Len() int {
	return len(s.entries)
}

// Clone returns a deep copy of the store
func (s *Store) Clone() *Store {
	c := &Store{entries: make([]*Entry, len(s.entries))}
	for i, e := range s.entries {
		cp := *e
		c.entries[i] = &cp
	}
	return c
}

// Equal reports whether both stores hold the same entries in the same order
func (s *Store) Equal(other *Store) bool {
	if other == nil || len(s.entries) != len(other.entries) {
		return false
	}
	for i, e := range s.entries {
		if *e != *other.entries[i] {
			return false
		}
	}
	return true
}
