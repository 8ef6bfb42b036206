package container

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/llmtools/catalog"
	"github.com/effective-security/xlog"
)

// Kind of the entry
type Kind int

const (
	// KindProvider is a provider entry
	KindProvider Kind = iota
	// KindController is a controller entry
	KindController
)

func (k Kind) String() string {
	if k == KindController {
		return "controller"
	}
	return "provider"
}

// ensure Entry implements catalog.InstanceWrapper
var _ catalog.InstanceWrapper = (*Entry)(nil)

// Entry is a registered instance.
type Entry struct {
	name    string
	kind    Kind
	factory Factory
	lazy    bool
	target  *Entry

	lock     sync.Mutex
	instance any
	created  bool
}

// Name returns the registration name.
func (e *Entry) Name() string {
	return e.name
}

// Kind returns the kind of the entry.
func (e *Entry) Kind() Kind {
	return e.kind
}

// IsAlias returns true if the entry is an alias.
func (e *Entry) IsAlias() bool {
	return e.target != nil
}

// IsLazy returns true if the entry is created on first use.
func (e *Entry) IsLazy() bool {
	return e.lazy
}

// Instance returns the instance, or nil if it is not created yet.
func (e *Entry) Instance() any {
	if e.target != nil {
		return e.target.Instance()
	}
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.instance
}

func (e *Entry) resolve(ctx context.Context, c *Container) (any, error) {
	if e.target != nil {
		return e.target.resolve(ctx, c)
	}

	e.lock.Lock()
	defer e.lock.Unlock()
	if e.created {
		return e.instance, nil
	}

	instance, err := e.factory(ctx, c)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create %s %q", e.kind, e.name)
	}
	e.instance = instance
	e.created = true

	logger.ContextKV(ctx, xlog.DEBUG,
		"status", "created",
		"kind", e.kind.String(),
		"name", e.name,
	)
	return instance, nil
}
