package schema

import (
	"encoding/json"
	"net/url"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ErrUnsupportedType is returned for types that can not be described by a JSON schema,
// like functions, channels or recursive structures.
var ErrUnsupportedType = errors.New("unsupported type")

var (
	cache   = make(map[reflect.Type]*jsonschema.Schema)
	cacheMu sync.Mutex
)

// ForType returns the JSON schema describing values of t.
// Nested structures are inlined, the result has no `$defs`.
// The returned schema is shared and must not be modified.
func ForType(t reflect.Type) (*jsonschema.Schema, error) {
	if t == nil {
		return nil, errors.Wrap(ErrUnsupportedType, "nil type")
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if s, ok := cache[t]; ok {
		return s, nil
	}

	if err := check(t, map[reflect.Type]bool{}); err != nil {
		return nil, err
	}

	s, err := reflectType(t)
	if err != nil {
		return nil, err
	}
	cache[t] = s

	return s, nil
}

func reflectType(t reflect.Type) (s *jsonschema.Schema, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(ErrUnsupportedType, "%s: %v", t, r)
		}
	}()

	s = JSONSchema(t)
	s.Version = ""
	s.ID = ""
	s.Definitions = nil
	return s, nil
}

var (
	timeType = reflect.TypeOf(time.Time{})
	urlType  = reflect.TypeOf(url.URL{})
)

// check walks the type graph and rejects kinds that JSON schema can not describe.
// path holds the struct types on the current path to detect recursion.
func check(t reflect.Type, path map[reflect.Type]bool) error {
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Array:
		return check(t.Elem(), path)
	case reflect.Map:
		return check(t.Elem(), path)
	case reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Complex64, reflect.Complex128, reflect.Invalid:
		return errors.Wrapf(ErrUnsupportedType, "%s", t)
	case reflect.Struct:
		if t == timeType || t == urlType {
			return nil
		}
		if path[t] {
			return errors.Wrapf(ErrUnsupportedType, "recursive type %s", t)
		}
		path[t] = true
		defer delete(path, t)
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() || strings.HasPrefix(f.Tag.Get("json"), "-") {
				continue
			}
			if err := check(f.Type, path); err != nil {
				return errors.Wrapf(err, "field %s.%s", t.Name(), f.Name)
			}
		}
	}
	return nil
}

// JSONSchema returns the JSON schema of the type
func JSONSchema(t reflect.Type) *jsonschema.Schema {
	r := &jsonschema.Reflector{
		Anonymous:                 true,
		DoNotReference:            true,
		AllowAdditionalProperties: true,
	}
	return r.ReflectFromType(t)
}

// WithDescription returns a shallow copy of s with the description set,
// or s itself if the description is empty.
func WithDescription(s *jsonschema.Schema, description string) *jsonschema.Schema {
	if s == nil || description == "" {
		return s
	}
	cp := *s
	cp.Description = description
	return &cp
}

// Object returns an object schema with the given properties
func Object(props *orderedmap.OrderedMap[string, *jsonschema.Schema], required []string) *jsonschema.Schema {
	if props == nil {
		props = jsonschema.NewProperties()
	}
	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
		Required:   required,
	}
}

// MustFromAny creates a json schema from any value.
// It panics if the value is not a valid schema.
//
// For example:
//
//	map[string]any{
//		"type": "string",
//		"enum": []string{"metric", "imperial"},
//	}
func MustFromAny(t any) *jsonschema.Schema {
	s, err := FromAny(t)
	if err != nil {
		panic(err)
	}
	return s
}

// FromAny creates a json schema from any value.
func FromAny(t any) (*jsonschema.Schema, error) {
	js, err := json.Marshal(t)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	s := &jsonschema.Schema{}
	err = json.Unmarshal(js, s)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return s, nil
}

// ToMap converts the schema to a generic map,
// as expected by provider SDKs.
func ToMap(s *jsonschema.Schema) (map[string]any, error) {
	if s == nil {
		return nil, nil
	}
	js, err := json.Marshal(s)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	var m map[string]any
	if err = json.Unmarshal(js, &m); err != nil {
		return nil, errors.WithStack(err)
	}
	return m, nil
}
