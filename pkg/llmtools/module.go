package llmtools

import (
	"github.com/cockroachdb/errors"
	"github.com/effective-security/llmtools/annotations"
	"github.com/effective-security/llmtools/callbacks"
	"github.com/effective-security/llmtools/catalog"
	"github.com/effective-security/llmtools/container"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/llmtools", "llmtools")

// Names of the providers registered by ForRoot
const (
	CatalogProviderName = "llmtools.catalog"
	LoaderProviderName  = "llmtools.loader"
)

// Module is the registered tool catalog
type Module struct {
	Catalog *catalog.Catalog
	Loader  *catalog.Loader
}

// Option configures ForRoot
type Option func(*options)

type options struct {
	store    *annotations.Store
	catalog  *catalog.Catalog
	callback catalog.Callback
}

// WithStore sets the annotations store, annotations.Default by default.
func WithStore(store *annotations.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithCatalog sets the catalog to populate, a new catalog by default.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(o *options) {
		o.catalog = cat
	}
}

// WithCallback sets the callback of the catalog build, callbacks.Noop by default.
func WithCallback(cb catalog.Callback) Option {
	return func(o *options) {
		o.callback = cb
	}
}

// ForRoot registers the catalog and its loader in the container.
// The catalog is built when the container is initialized.
func ForRoot(c *container.Container, cfg *Config, opts ...Option) (*Module, error) {
	if c == nil {
		return nil, errors.New("container is required")
	}

	o := &options{
		store: annotations.Default,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.catalog == nil {
		o.catalog = catalog.New()
	}

	if o.callback == nil {
		o.callback = callbacks.NewNoop()
	}
	loaderOpts := []catalog.LoaderOption{
		catalog.WithPrefixClassName(cfg.GetPrefixClassName()),
		catalog.WithCallback(o.callback),
	}

	m := &Module{
		Catalog: o.catalog,
		Loader:  catalog.NewLoader(c, o.store, o.catalog, loaderOpts...),
	}

	if err := c.Provide(CatalogProviderName, m.Catalog); err != nil {
		return nil, err
	}
	if err := c.Provide(LoaderProviderName, m.Loader); err != nil {
		return nil, err
	}
	if err := c.OnBootstrap(m.Loader); err != nil {
		return nil, err
	}

	logger.KV(xlog.DEBUG,
		"status", "registered",
		"prefix_class_name", cfg.GetPrefixClassName(),
	)
	return m, nil
}
