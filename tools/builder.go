package tools

import (
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/llmtools/annotations"
)

// Builder registers tools of one type
//
//	func init() {
//		tools.For[*Weather](nil).
//			Tool("Forecast", "Returns the forecast for a city").
//			Param(1, tools.WithDescription("City name")).
//			Param(2, tools.WithName("days")).
//			Must()
//	}
type Builder struct {
	store  *annotations.Store
	target reflect.Type
	errs   []error
}

// MethodBuilder registers parameters of one tool method
type MethodBuilder struct {
	*Builder
	method string
}

// For returns a Builder for the type T, which is usually a pointer type.
// A nil store means annotations.Default.
func For[T any](store *annotations.Store) *Builder {
	return ForType(store, reflect.TypeFor[T]())
}

// ForType returns a Builder for the type.
// A nil store means annotations.Default.
func ForType(store *annotations.Store, target reflect.Type) *Builder {
	if store == nil {
		store = annotations.Default
	}
	return &Builder{
		store:  store,
		target: target,
	}
}

// Tool marks the method as a tool.
func (b *Builder) Tool(method, description string) *MethodBuilder {
	if err := MarkTool(b.store, b.target, method, description); err != nil {
		b.errs = append(b.errs, err)
	}
	return &MethodBuilder{Builder: b, method: method}
}

// Param describes the parameter at index of the current tool method.
func (m *MethodBuilder) Param(index int, opts ...ParamOption) *MethodBuilder {
	if err := MarkParam(m.store, m.target, m.method, index, opts...); err != nil {
		m.errs = append(m.errs, err)
	}
	return m
}

// Err returns the registration errors, if any.
func (b *Builder) Err() error {
	if len(b.errs) == 0 {
		return nil
	}
	return errors.Join(b.errs...)
}

// Must panics on registration errors.
func (b *Builder) Must() {
	if err := b.Err(); err != nil {
		panic(err)
	}
}
