package tools

import (
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/llmtools/annotations"
	"github.com/effective-security/llmtools/inference"
	"github.com/effective-security/llmtools/pkg/schema"
	"github.com/effective-security/xlog"
	"github.com/invopop/jsonschema"
)

// ParamOption configures a tool parameter
type ParamOption func(*paramOptions)

type paramOptions struct {
	name        string
	typ         *jsonschema.Schema
	goType      reflect.Type
	description string
}

// WithName sets the parameter name, otherwise it is inferred from the method source.
func WithName(name string) ParamOption {
	return func(o *paramOptions) {
		o.name = name
	}
}

// WithType sets the parameter schema, otherwise it is inferred from the method type.
func WithType(s *jsonschema.Schema) ParamOption {
	return func(o *paramOptions) {
		o.typ = s
	}
}

// WithGoType sets the Go type the parameter schema is derived from.
// WithType takes precedence for the schema.
func WithGoType(t reflect.Type) ParamOption {
	return func(o *paramOptions) {
		o.goType = t
	}
}

// WithDescription sets the parameter description.
func WithDescription(description string) ParamOption {
	return func(o *paramOptions) {
		o.description = description
	}
}

// MarkTool marks the method of target as a tool.
// Marking the same method again replaces the description.
func MarkTool(store *annotations.Store, target reflect.Type, method, description string) error {
	if err := checkMethod(target, method); err != nil {
		return err
	}

	key := annotations.KeyOf(target, method)
	store.SetMethodMeta(key, MetaKeyTool, &ToolMethod{Description: description})

	logger.KV(xlog.DEBUG, "status", "tool", "key", key.String())
	return nil
}

// MarkParam describes the parameter at index of the method of target.
// The index does not count the receiver.
// The name and the type are inferred when not provided;
// ErrConfiguration is returned when inference fails,
// and nothing is recorded in this case.
// Parameters already recorded for the method are preserved.
func MarkParam(store *annotations.Store, target reflect.Type, method string, index int, opts ...ParamOption) error {
	if err := checkMethod(target, method); err != nil {
		return err
	}
	if index < 0 {
		return errors.Wrapf(ErrConfiguration, "invalid parameter index for %s.%s[%d]", annotations.ShortTypeName(target), method, index)
	}

	o := &paramOptions{}
	for _, opt := range opts {
		opt(o)
	}

	name := o.name
	if name == "" {
		var ok bool
		name, ok = inference.ParamName(target, method, index)
		if !ok {
			return errors.Wrapf(ErrConfiguration,
				"cannot infer parameter name, use tools.WithName for %s.%s[%d]",
				annotations.ShortTypeName(target), method, index)
		}
	}

	typ, goType, err := resolveType(o, target, method, index)
	if err != nil {
		return err
	}

	key := annotations.KeyOf(target, method)
	store.SetParamMeta(key, MetaKeyParam, index, &Param{
		Index:       index,
		Name:        name,
		Type:        typ,
		GoType:      goType,
		Description: o.description,
	})

	logger.KV(xlog.DEBUG, "status", "tool_param", "key", key.String(), "index", index, "name", name)
	return nil
}

func resolveType(o *paramOptions, target reflect.Type, method string, index int) (*jsonschema.Schema, reflect.Type, error) {
	if o.typ != nil {
		return o.typ, o.goType, nil
	}

	if o.goType != nil {
		s, err := schema.ForType(o.goType)
		if err != nil {
			return nil, nil, errors.Wrapf(ErrConfiguration,
				"cannot describe parameter type %s for %s.%s[%d]: %s",
				o.goType, annotations.ShortTypeName(target), method, index, err.Error())
		}
		return s, o.goType, nil
	}

	s, goType, ok := inference.ParamType(target, method, index)
	if !ok {
		return nil, nil, errors.Wrapf(ErrConfiguration,
			"cannot infer parameter type, use tools.WithType for %s.%s[%d]",
			annotations.ShortTypeName(target), method, index)
	}
	return s, goType, nil
}

func checkMethod(target reflect.Type, method string) error {
	if target == nil {
		return errors.Wrapf(ErrConfiguration, "missing target type for %s", method)
	}
	if method == "" {
		return errors.Wrapf(ErrConfiguration, "missing method name for %s", annotations.ShortTypeName(target))
	}
	if _, ok := target.MethodByName(method); !ok {
		return errors.Wrapf(ErrConfiguration, "method %s is not exported by %s", method, target)
	}
	return nil
}
