package appearance

import "errors"

// recorder captures projector writes so tests can assert on the final
// surface state rather than on internal controller fields.
type recorder struct {
	variables map[string]string
	markers   map[string]string
	varWrites int
}

func newRecorder() *recorder {
	return &recorder{
		variables: make(map[string]string),
		markers:   make(map[string]string),
	}
}

func (r *recorder) SetVariable(name, value string) {
	r.variables[name] = value
	r.varWrites++
}

func (r *recorder) SetExclusiveMarker(group, value string) {
	r.markers[group] = value
}

func (r *recorder) snapshot() map[string]string {
	out := make(map[string]string, len(r.variables))
	for name, value := range r.variables {
		out[name] = value
	}
	return out
}

// fakeStore is an in-memory Store that counts writes.
type fakeStore struct {
	values map[string]string
	writes int
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: make(map[string]string)}
}

func (s *fakeStore) Get(key string) (string, bool) {
	value, ok := s.values[key]
	return value, ok
}

func (s *fakeStore) Set(key, value string) error {
	s.writes++
	s.values[key] = value
	return nil
}

var errStoreDown = errors.New("store down")

// brokenStore reads like fakeStore but fails every write.
type brokenStore struct {
	values map[string]string
}

func (s *brokenStore) Get(key string) (string, bool) {
	value, ok := s.values[key]
	return value, ok
}

func (s *brokenStore) Set(key, value string) error {
	return errStoreDown
}

func testTables() map[string]map[string]string {
	return map[string]map[string]string{
		"de": {"menu.overview": "Übersicht", "menu.exit": "Beenden"},
		"en": {"menu.overview": "Overview"},
	}
}
