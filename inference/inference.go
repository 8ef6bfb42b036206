// Package inference recovers the name and the type of a method parameter
// when they are not supplied with the annotation.
package inference

import (
	"reflect"

	"github.com/effective-security/llmtools/pkg/schema"
	"github.com/effective-security/llmtools/pkg/signature"
	"github.com/effective-security/xlog"
	"github.com/invopop/jsonschema"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/llmtools", "inference")

// ParamName returns the source name of the parameter at index
// of the method declared on t. The receiver is not counted.
// Blank `_` parameters have no name.
func ParamName(t reflect.Type, method string, index int) (string, bool) {
	sig, err := signature.Of(t, method)
	if err != nil {
		logger.KV(xlog.DEBUG,
			"reason", "signature",
			"type", t,
			"method", method,
			"err", err.Error(),
		)
		return "", false
	}

	name, ok := signature.ParamName(sig, index)
	if !ok || name == "_" {
		return "", false
	}
	return name, true
}

// ParamType returns the static type of the parameter at index
// of the method declared on t, and its schema.
// The receiver is not counted.
func ParamType(t reflect.Type, method string, index int) (*jsonschema.Schema, reflect.Type, bool) {
	pt, ok := StaticType(t, method, index)
	if !ok {
		return nil, nil, false
	}

	s, err := schema.ForType(pt)
	if err != nil {
		logger.KV(xlog.DEBUG,
			"reason", "schema",
			"type", t,
			"method", method,
			"index", index,
			"err", err.Error(),
		)
		return nil, pt, false
	}
	return s, pt, true
}

// StaticType returns the declared Go type of the parameter at index.
func StaticType(t reflect.Type, method string, index int) (reflect.Type, bool) {
	if t == nil || index < 0 {
		return nil, false
	}
	m, ok := t.MethodByName(method)
	if !ok {
		return nil, false
	}

	mt := m.Type
	// methods obtained from a concrete type take the receiver first
	if t.Kind() != reflect.Interface {
		index++
	}
	if index >= mt.NumIn() {
		return nil, false
	}
	return mt.In(index), true
}
