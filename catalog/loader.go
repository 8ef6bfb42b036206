package catalog

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/llmtools/annotations"
	"github.com/effective-security/llmtools/pkg/metricskey"
	"github.com/effective-security/llmtools/tools"
	"github.com/effective-security/x/values"
	"github.com/effective-security/xlog"
	"github.com/google/uuid"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/llmtools", "catalog")

// Options for the Loader
type Options struct {
	// PrefixClassName is the module registration option, true by default.
	// Tool names are the method identifiers in both cases,
	// the declaring type is reported in ToolDefinition.Class.
	PrefixClassName bool
}

// LoaderOption configures the Loader
type LoaderOption func(*Loader)

// WithPrefixClassName sets Options.PrefixClassName.
func WithPrefixClassName(prefix bool) LoaderOption {
	return func(l *Loader) {
		l.opts.PrefixClassName = prefix
	}
}

// WithCallback sets the callback for the build events.
func WithCallback(cb Callback) LoaderOption {
	return func(l *Loader) {
		l.callback = cb
	}
}

// Loader builds the catalog from the managed instances.
type Loader struct {
	discovery Discovery
	store     *annotations.Store
	catalog   *Catalog
	opts      Options
	callback  Callback
}

// NewLoader returns a Loader.
// A nil store means annotations.Default, a nil catalog means Default.
// Options.PrefixClassName is true by default.
func NewLoader(discovery Discovery, store *annotations.Store, cat *Catalog, opts ...LoaderOption) *Loader {
	if store == nil {
		store = annotations.Default
	}
	if cat == nil {
		cat = Default
	}
	l := &Loader{
		discovery: discovery,
		store:     store,
		catalog:   cat,
		opts: Options{
			PrefixClassName: true,
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Catalog returns the catalog populated by the loader.
func (l *Loader) Catalog() *Catalog {
	return l.catalog
}

// Options returns the loader options.
func (l *Loader) Options() Options {
	return l.opts
}

// OnApplicationBootstrap builds the catalog.
// It must run once, after all instances are created;
// ErrSealed is returned if the catalog is already built.
func (l *Loader) OnApplicationBootstrap(ctx context.Context) error {
	started := time.Now()
	if l.catalog.Sealed() {
		return errors.WithStack(ErrSealed)
	}
	if l.discovery == nil {
		return errors.New("discovery is not provided")
	}

	buildID := uuid.NewString()
	count := 0
	for _, w := range instances(l.discovery) {
		defs, err := l.collect(w)
		if err != nil {
			name := instanceName(w)
			logger.ContextKV(ctx, xlog.ERROR,
				"reason", "skip_instance",
				"build_id", buildID,
				"instance", name,
				"err", err.Error(),
			)
			metricskey.StatsToolInstancesSkipped.IncrCounter(1, name)
			if l.callback != nil {
				l.callback.OnInstanceSkipped(ctx, name, err)
			}
			continue
		}
		if len(defs) == 0 {
			continue
		}

		if err = l.catalog.Append(defs...); err != nil {
			return err
		}
		count += len(defs)

		for _, def := range defs {
			logger.ContextKV(ctx, xlog.DEBUG,
				"status", "tool_discovered",
				"tool", def.Name,
				"params", def.Parameters.Len(),
			)
			metricskey.StatsToolsDiscovered.IncrCounter(1, def.Class)
			if l.callback != nil {
				l.callback.OnToolDiscovered(ctx, def)
			}
		}
	}

	l.catalog.Seal()

	elapsed := time.Since(started)
	metricskey.PerfCatalogBuild.MeasureSince(started)
	logger.ContextKV(ctx, xlog.INFO,
		"status", "catalog_built",
		"build_id", buildID,
		"tools", count,
		"elapsed", elapsed.String(),
	)
	if l.callback != nil {
		l.callback.OnCatalogBuilt(ctx, count, elapsed)
	}
	return nil
}

// collect returns the tool definitions of the instance's annotated methods.
// Aliases and entries that are not created have no definitions.
func (l *Loader) collect(w InstanceWrapper) (defs []*ToolDefinition, err error) {
	defer func() {
		if r := recover(); r != nil {
			defs = nil
			err = errors.Newf("failed to read tool metadata: %v", r)
		}
	}()

	if w.IsAlias() {
		return nil, nil
	}
	instance := w.Instance()
	if instance == nil {
		return nil, nil
	}
	v := reflect.ValueOf(instance)
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, errors.Newf("instance is nil %s", v.Type())
	}

	t := v.Type()
	class := annotations.ShortTypeName(t)
	for _, method := range MethodNames(instance) {
		key := annotations.KeyOf(t, method)
		tm, ok := tools.ToolOf(l.store, key)
		if !ok {
			continue
		}

		defs = append(defs, &ToolDefinition{
			Name:        method,
			Class:       class,
			Method:      method,
			Description: tm.Description,
			Parameters:  tools.ParamsOf(l.store, key),
		})
	}
	return defs, nil
}

func instanceName(w InstanceWrapper) (name string) {
	defer func() {
		if r := recover(); r != nil {
			name = fmt.Sprintf("%T", w)
		}
	}()
	return values.StringsCoalesce(w.Name(), annotations.TypeName(reflect.TypeOf(w.Instance())))
}
