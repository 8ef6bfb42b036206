// Package container provides a minimal host for managed instances:
// providers, controllers, aliases and bootstrap hooks.
//
// Entries are registered while the application is assembled, then
// Init creates the eager entries and runs the bootstrap hooks once.
package container

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/llmtools/catalog"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/llmtools", "container")

var (
	// ErrDuplicate is returned when a name is registered twice.
	ErrDuplicate = errors.New("duplicate registration")
	// ErrNotFound is returned when a name is not registered.
	ErrNotFound = errors.New("not registered")
	// ErrAlreadyInitialized is returned by Init when called more than once,
	// and by registration calls after Init.
	ErrAlreadyInitialized = errors.New("container is already initialized")
)

// Bootstrapper is notified once, after all eager entries are created.
type Bootstrapper interface {
	OnApplicationBootstrap(ctx context.Context) error
}

// Factory creates an instance.
type Factory func(ctx context.Context, c *Container) (any, error)

// ensure Container implements catalog.Discovery
var _ catalog.Discovery = (*Container)(nil)

// Container holds the managed instances of an application.
type Container struct {
	lock        sync.Mutex
	providers   []*Entry
	controllers []*Entry
	byName      map[string]*Entry
	hooks       []Bootstrapper
	initialized bool
}

// New returns an empty container.
func New() *Container {
	return &Container{
		byName: make(map[string]*Entry),
	}
}

// Provide registers a created provider.
func (c *Container) Provide(name string, instance any) error {
	if instance == nil {
		return errors.Newf("instance is required: %s", name)
	}
	return c.register(&Entry{name: name, kind: KindProvider, instance: instance, created: true})
}

// ProvideFactory registers a provider created by Init.
func (c *Container) ProvideFactory(name string, factory Factory) error {
	if factory == nil {
		return errors.Newf("factory is required: %s", name)
	}
	return c.register(&Entry{name: name, kind: KindProvider, factory: factory})
}

// ProvideLazy registers a provider created on first Get.
// Until then the provider has no instance.
func (c *Container) ProvideLazy(name string, factory Factory) error {
	if factory == nil {
		return errors.Newf("factory is required: %s", name)
	}
	return c.register(&Entry{name: name, kind: KindProvider, factory: factory, lazy: true})
}

// Controller registers a created controller.
func (c *Container) Controller(name string, instance any) error {
	if instance == nil {
		return errors.Newf("instance is required: %s", name)
	}
	return c.register(&Entry{name: name, kind: KindController, instance: instance, created: true})
}

// Alias registers name as another name of the provider target.
func (c *Container) Alias(name, target string) error {
	c.lock.Lock()
	t := c.byName[target]
	c.lock.Unlock()
	if t == nil {
		return errors.Wrapf(ErrNotFound, "alias target %q", target)
	}
	for t.target != nil {
		t = t.target
	}
	return c.register(&Entry{name: name, kind: KindProvider, target: t})
}

// OnBootstrap registers a hook called by Init, in registration order.
func (c *Container) OnBootstrap(hook Bootstrapper) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.initialized {
		return errors.WithStack(ErrAlreadyInitialized)
	}
	c.hooks = append(c.hooks, hook)
	return nil
}

func (c *Container) register(e *Entry) error {
	if e.name == "" {
		return errors.New("name is required")
	}

	c.lock.Lock()
	defer c.lock.Unlock()
	if c.initialized {
		return errors.WithStack(ErrAlreadyInitialized)
	}
	if _, ok := c.byName[e.name]; ok {
		return errors.Wrapf(ErrDuplicate, "name %q", e.name)
	}
	c.byName[e.name] = e
	if e.kind == KindController {
		c.controllers = append(c.controllers, e)
	} else {
		c.providers = append(c.providers, e)
	}
	return nil
}

// Init creates the eager entries in registration order,
// then calls the bootstrap hooks. It can be called only once.
func (c *Container) Init(ctx context.Context) error {
	c.lock.Lock()
	if c.initialized {
		c.lock.Unlock()
		return errors.WithStack(ErrAlreadyInitialized)
	}
	c.initialized = true
	entries := make([]*Entry, 0, len(c.providers)+len(c.controllers))
	entries = append(entries, c.providers...)
	entries = append(entries, c.controllers...)
	hooks := append([]Bootstrapper(nil), c.hooks...)
	c.lock.Unlock()

	for _, e := range entries {
		if e.lazy || e.target != nil {
			continue
		}
		if _, err := e.resolve(ctx, c); err != nil {
			return err
		}
	}

	for _, hook := range hooks {
		if err := hook.OnApplicationBootstrap(ctx); err != nil {
			return errors.WithMessage(err, "bootstrap failed")
		}
	}

	logger.ContextKV(ctx, xlog.DEBUG,
		"status", "initialized",
		"providers", len(c.providers),
		"controllers", len(c.controllers),
		"hooks", len(hooks),
	)
	return nil
}

// Initialized returns true after Init was called.
func (c *Container) Initialized() bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.initialized
}

// Get returns the instance registered with the name,
// creating a lazy provider if needed.
func (c *Container) Get(ctx context.Context, name string) (any, error) {
	c.lock.Lock()
	e := c.byName[name]
	c.lock.Unlock()
	if e == nil {
		return nil, errors.Wrapf(ErrNotFound, "name %q", name)
	}
	return e.resolve(ctx, c)
}

// Providers returns the provider entries, including aliases, in registration order.
func (c *Container) Providers() []catalog.InstanceWrapper {
	c.lock.Lock()
	defer c.lock.Unlock()
	return wrappers(c.providers)
}

// Controllers returns the controller entries in registration order.
func (c *Container) Controllers() []catalog.InstanceWrapper {
	c.lock.Lock()
	defer c.lock.Unlock()
	return wrappers(c.controllers)
}

func wrappers(entries []*Entry) []catalog.InstanceWrapper {
	list := make([]catalog.InstanceWrapper, len(entries))
	for i, e := range entries {
		list[i] = e
	}
	return list
}
