package store

import (
	"cmp"
	"slices"
	"sync"

	"github.com/vhal-go/vhal/pkg/prop"
)

// Store is an in-memory property store.
type Store struct {
	mu      sync.RWMutex
	configs map[prop.PropertyID]prop.Config
	values  map[prop.Key]*prop.Value
}

// New creates an empty store.
func New() *Store {
	return &Store{
		configs: make(map[prop.PropertyID]prop.Config),
		values:  make(map[prop.Key]*prop.Value),
	}
}

func keyOf(id prop.PropertyID, areaID int32) prop.Key {
	if id.IsGlobal() {
		areaID = 0
	}
	return prop.Key{Prop: id, AreaID: areaID}
}

// RegisterProperty adds a config and, if initial is non-nil, its first value.
// Registering the same property again replaces its config.
func (s *Store) RegisterProperty(cfg prop.Config, initial *prop.Value) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.configs[cfg.Prop] = cfg.Clone()
	if initial != nil {
		v := initial.Clone()
		v.Prop = cfg.Prop
		s.values[keyOf(v.Prop, v.AreaID)] = v
	}
}

// WriteValue stores a copy of v. See the package documentation for when it
// reports true.
func (s *Store) WriteValue(v *prop.Value, updateStatus bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.configs[v.Prop]; !ok {
		return false
	}

	key := keyOf(v.Prop, v.AreaID)
	current, ok := s.values[key]
	if !ok {
		nv := v.Clone()
		nv.AreaID = key.AreaID
		s.values[key] = nv
		return true
	}

	if current.Timestamp > v.Timestamp {
		return false
	}

	changed := !current.Value.Equal(v.Value)
	current.Timestamp = v.Timestamp
	current.Value = v.Value.Clone()
	if updateStatus && current.Status != v.Status {
		current.Status = v.Status
		changed = true
	}
	return changed
}

// ReadValue returns a copy of the stored value for v's (property, area),
// or nil if none is stored.
func (s *Store) ReadValue(v *prop.Value) *prop.Value {
	return s.Read(v.Prop, v.AreaID)
}

// Read returns a copy of the stored value for (id, areaID), or nil.
func (s *Store) Read(id prop.PropertyID, areaID int32) *prop.Value {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[keyOf(id, areaID)].Clone()
}

// ReadValuesForProperty returns copies of every stored instance of id,
// ordered by area id.
func (s *Store) ReadValuesForProperty(id prop.PropertyID) []*prop.Value {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*prop.Value
	for k, v := range s.values {
		if k.Prop == id {
			out = append(out, v.Clone())
		}
	}
	slices.SortFunc(out, func(a, b *prop.Value) int { return cmp.Compare(a.AreaID, b.AreaID) })
	return out
}

// ReadAllValues returns copies of every stored value, ordered by key.
func (s *Store) ReadAllValues() []*prop.Value {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*prop.Value, 0, len(s.values))
	for _, v := range s.values {
		out = append(out, v.Clone())
	}
	slices.SortFunc(out, func(a, b *prop.Value) int {
		if c := cmp.Compare(a.Prop, b.Prop); c != 0 {
			return c
		}
		return cmp.Compare(a.AreaID, b.AreaID)
	})
	return out
}

// RemoveValue deletes the stored instance for v's (property, area).
func (s *Store) RemoveValue(v *prop.Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, keyOf(v.Prop, v.AreaID))
}

// Config returns a copy of the config of id, or nil if none is registered.
func (s *Store) Config(id prop.PropertyID) *prop.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg, ok := s.configs[id]
	if !ok {
		return nil
	}
	c := cfg.Clone()
	return &c
}

// AllConfigs returns copies of every registered config, ordered by id.
func (s *Store) AllConfigs() []prop.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]prop.Config, 0, len(s.configs))
	for _, cfg := range s.configs {
		out = append(out, cfg.Clone())
	}
	slices.SortFunc(out, func(a, b prop.Config) int { return cmp.Compare(a.Prop, b.Prop) })
	return out
}
