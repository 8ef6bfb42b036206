package annotations

import (
	"reflect"
	"sync"
)

// MemberKey identifies a method of an application type.
type MemberKey struct {
	// Type is the stable type identifier, see TypeName.
	Type string
	// Method is the method identifier.
	Method string
}

func (k MemberKey) String() string {
	return k.Type + "." + k.Method
}

// KeyOf returns the MemberKey for the method of the given type.
func KeyOf(t reflect.Type, method string) MemberKey {
	return MemberKey{Type: TypeName(t), Method: method}
}

// TypeName returns the package-qualified name of t,
// with pointers dereferenced: `github.com/acme/svc.Weather`
func TypeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// ShortTypeName returns the unqualified name of t, with pointers dereferenced.
func ShortTypeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}

// Default is the process-wide store
var Default = NewStore()

type member struct {
	meta   map[string]any
	params map[string]map[int]any
}

// Store keeps metadata per member and per member parameter.
// Values are opaque to the store, validation is done by the callers.
type Store struct {
	mu      sync.RWMutex
	members map[MemberKey]*member
	order   []MemberKey
}

// NewStore returns an empty store
func NewStore() *Store {
	return &Store{}
}

// member returns the record for the key, creating it on first use.
// must be called under the write lock.
func (s *Store) member(key MemberKey) *member {
	if s.members == nil {
		// create on first use
		s.members = make(map[MemberKey]*member)
	}
	m := s.members[key]
	if m == nil {
		m = &member{
			meta:   make(map[string]any),
			params: make(map[string]map[int]any),
		}
		s.members[key] = m
		s.order = append(s.order, key)
	}
	return m
}

// SetMethodMeta attaches the value to the method under metaKey,
// replacing any previous value.
func (s *Store) SetMethodMeta(key MemberKey, metaKey string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.member(key).meta[metaKey] = value
}

// MethodMeta returns the value attached to the method under metaKey.
func (s *Store) MethodMeta(key MemberKey, metaKey string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m := s.members[key]
	if m == nil {
		return nil, false
	}
	v, ok := m.meta[metaKey]
	return v, ok
}

// SetParamMeta attaches the value to the parameter at index under metaKey.
// Values already recorded for other parameters of the same method are kept.
func (s *Store) SetParamMeta(key MemberKey, metaKey string, index int, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.member(key)
	params := m.params[metaKey]
	if params == nil {
		params = make(map[int]any)
		m.params[metaKey] = params
	}
	params[index] = value
}

// ParamMeta returns a copy of the parameter mapping of the method under metaKey,
// or nil if nothing was recorded.
func (s *Store) ParamMeta(key MemberKey, metaKey string) map[int]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m := s.members[key]
	if m == nil || len(m.params[metaKey]) == 0 {
		return nil
	}
	res := make(map[int]any, len(m.params[metaKey]))
	for idx, v := range m.params[metaKey] {
		res[idx] = v
	}
	return res
}

// Members returns the keys of annotated members in the order of first annotation.
func (s *Store) Members() []MemberKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]MemberKey, len(s.order))
	copy(res, s.order)
	return res
}

// Reset removes all metadata.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = nil
	s.order = nil
}
