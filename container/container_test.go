package container_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/llmtools/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type service struct {
	name string
}

type hook struct {
	calls int
	err   error
	seen  []any
	c     *container.Container
}

func (h *hook) OnApplicationBootstrap(ctx context.Context) error {
	h.calls++
	if h.c != nil {
		for _, w := range h.c.Providers() {
			h.seen = append(h.seen, w.Instance())
		}
	}
	return h.err
}

func TestRegistration(t *testing.T) {
	t.Parallel()

	c := container.New()
	svc := &service{name: "svc"}
	require.NoError(t, c.Provide("svc", svc))
	require.NoError(t, c.Controller("api", &service{name: "api"}))
	require.NoError(t, c.Alias("svc-alias", "svc"))
	require.NoError(t, c.Alias("svc-alias2", "svc-alias"))

	err := c.Provide("svc", &service{})
	assert.True(t, errors.Is(err, container.ErrDuplicate))
	err = c.Controller("svc", &service{})
	assert.True(t, errors.Is(err, container.ErrDuplicate))
	err = c.Alias("other", "missing")
	assert.True(t, errors.Is(err, container.ErrNotFound))

	assert.EqualError(t, c.Provide("", svc), "name is required")
	assert.EqualError(t, c.Provide("nil", nil), "instance is required: nil")
	assert.EqualError(t, c.ProvideFactory("nil", nil), "factory is required: nil")
	assert.EqualError(t, c.ProvideLazy("nil", nil), "factory is required: nil")

	providers := c.Providers()
	require.Len(t, providers, 3)
	assert.Equal(t, "svc", providers[0].Name())
	assert.False(t, providers[0].IsAlias())
	assert.Equal(t, "svc-alias", providers[1].Name())
	assert.True(t, providers[1].IsAlias())
	assert.Same(t, svc, providers[1].Instance())
	assert.Same(t, svc, providers[2].Instance())

	controllers := c.Controllers()
	require.Len(t, controllers, 1)
	assert.Equal(t, "api", controllers[0].Name())

	got, err := c.Get(context.Background(), "svc-alias2")
	require.NoError(t, err)
	assert.Same(t, svc, got)

	_, err = c.Get(context.Background(), "missing")
	assert.True(t, errors.Is(err, container.ErrNotFound))
}

func TestInit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := container.New()

	created := 0
	require.NoError(t, c.ProvideFactory("eager", func(ctx context.Context, c *container.Container) (any, error) {
		created++
		return &service{name: "eager"}, nil
	}))
	lazyCreated := 0
	require.NoError(t, c.ProvideLazy("lazy", func(ctx context.Context, c *container.Container) (any, error) {
		lazyCreated++
		return &service{name: "lazy"}, nil
	}))

	h := &hook{c: c}
	require.NoError(t, c.OnBootstrap(h))

	assert.Nil(t, c.Providers()[0].Instance())
	assert.False(t, c.Initialized())

	require.NoError(t, c.Init(ctx))
	assert.True(t, c.Initialized())
	assert.Equal(t, 1, created)
	assert.Equal(t, 0, lazyCreated)
	assert.Equal(t, 1, h.calls)
	require.Len(t, h.seen, 2)
	assert.NotNil(t, h.seen[0])
	assert.Nil(t, h.seen[1])

	err := c.Init(ctx)
	assert.True(t, errors.Is(err, container.ErrAlreadyInitialized))
	assert.Equal(t, 1, h.calls)

	err = c.Provide("late", &service{})
	assert.True(t, errors.Is(err, container.ErrAlreadyInitialized))
	err = c.OnBootstrap(&hook{})
	assert.True(t, errors.Is(err, container.ErrAlreadyInitialized))

	lazy, err := c.Get(ctx, "lazy")
	require.NoError(t, err)
	assert.Equal(t, "lazy", lazy.(*service).name)
	_, err = c.Get(ctx, "lazy")
	require.NoError(t, err)
	assert.Equal(t, 1, lazyCreated)
	assert.Same(t, lazy, c.Providers()[1].Instance())
}

func TestInit_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("factory", func(t *testing.T) {
		c := container.New()
		require.NoError(t, c.ProvideFactory("broken", func(ctx context.Context, c *container.Container) (any, error) {
			return nil, errors.New("no connection")
		}))
		h := &hook{}
		require.NoError(t, c.OnBootstrap(h))

		err := c.Init(ctx)
		assert.EqualError(t, err, `failed to create provider "broken": no connection`)
		assert.Equal(t, 0, h.calls)
	})

	t.Run("hook", func(t *testing.T) {
		c := container.New()
		sentinel := errors.New("sealed")
		require.NoError(t, c.OnBootstrap(&hook{err: sentinel}))

		err := c.Init(ctx)
		assert.EqualError(t, err, "bootstrap failed: sealed")
		assert.True(t, errors.Is(err, sentinel))
	})
}

func TestKind(t *testing.T) {
	assert.Equal(t, "provider", container.KindProvider.String())
	assert.Equal(t, "controller", container.KindController.String())
}
