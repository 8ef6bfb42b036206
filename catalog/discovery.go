package catalog

import (
	"context"
	"reflect"
	"time"
)

//go:generate mockgen -source=discovery.go -destination=../mocks/mockcatalog/discovery_mock.gen.go -package mockcatalog

// InstanceWrapper is a managed instance reported by the host container.
type InstanceWrapper interface {
	// Name returns the registration name of the instance.
	Name() string
	// IsAlias returns true if the entry is an alias of another entry.
	IsAlias() bool
	// Instance returns the instance, or nil if it is not created.
	Instance() any
}

// Discovery enumerates the managed instances of the host container.
type Discovery interface {
	Providers() []InstanceWrapper
	Controllers() []InstanceWrapper
}

// Callback receives the events of the catalog build.
type Callback interface {
	OnToolDiscovered(ctx context.Context, def *ToolDefinition)
	OnInstanceSkipped(ctx context.Context, instance string, err error)
	OnCatalogBuilt(ctx context.Context, tools int, elapsed time.Duration)
}

// MethodNames returns the exported method names of the instance,
// in lexicographic order.
func MethodNames(instance any) []string {
	t := reflect.TypeOf(instance)
	if t == nil {
		return nil
	}
	names := make([]string, t.NumMethod())
	for i := range names {
		names[i] = t.Method(i).Name
	}
	return names
}

// instances returns the providers followed by the controllers.
// Aliases and entries that are not created are filtered by the loader.
func instances(d Discovery) []InstanceWrapper {
	var list []InstanceWrapper
	for _, group := range [][]InstanceWrapper{d.Providers(), d.Controllers()} {
		for _, w := range group {
			if w == nil {
				continue
			}
			list = append(list, w)
		}
	}
	return list
}
