package signature_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/llmtools/pkg/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamNames(t *testing.T) {
	t.Parallel()

	tcases := []struct {
		sig string
		exp []string
	}{
		{sig: "method(param1: string, param2: number)", exp: []string{"param1", "param2"}},
		{sig: "method(param1: string = 'default', param2: number = 42)", exp: []string{"param1", "param2"}},
		{sig: `method(param1: string = "default")`, exp: []string{"param1"}},
		{sig: "f(a, b)", exp: []string{"a", "b"}},
		{sig: "Forecast(ctx context.Context, city string, days int)", exp: []string{"ctx", "city", "days"}},
		{sig: "Run(fn func(a, b int) error, opts ...Option)", exp: []string{"fn", "opts"}},
		{sig: "Find(filter map[string]int, keys []string)", exp: []string{"filter", "keys"}},
		{sig: "method(...rest: any[])", exp: []string{"rest"}},
		{sig: "method(optional?: string)", exp: []string{"optional"}},
		{sig: "method(a = {x: 1, y: 2}, b)", exp: []string{"a", "b"}},
		{sig: "method()", exp: nil},
		{sig: "method(   )", exp: nil},
		{sig: "no parens", exp: nil},
		{sig: "method(a, b", exp: nil},
	}

	for _, tc := range tcases {
		t.Run(tc.sig, func(t *testing.T) {
			assert.Equal(t, tc.exp, signature.ParamNames(tc.sig))
		})
	}
}

func TestParamName(t *testing.T) {
	t.Parallel()

	name, ok := signature.ParamName("f(a, b)", 1)
	assert.True(t, ok)
	assert.Equal(t, "b", name)

	name, ok = signature.ParamName(`method(param1: string = "default", param2: number = 42)`, 0)
	assert.True(t, ok)
	assert.Equal(t, "param1", name)

	_, ok = signature.ParamName("method(param1: string)", 1)
	assert.False(t, ok)

	_, ok = signature.ParamName("method(param1: string)", -1)
	assert.False(t, ok)

	// trailing comma produces an empty fragment
	_, ok = signature.ParamName("method(a, )", 1)
	assert.False(t, ok)
}

// The known limitations stay as documented.
func TestParamNames_Limitations(t *testing.T) {
	t.Parallel()

	// comma inside a string default splits the fragment
	assert.Equal(t, []string{"a", `b"`}, signature.ParamNames(`m(a = "x, b", c)`)[0:2])
	// generic arguments are split
	assert.Len(t, signature.ParamNames("m(a: Map<string, number>)"), 2)
}

type forecaster struct{}

func (f *forecaster) Forecast(ctx context.Context, city string, days int) (string, error) {
	return city, nil
}

func (f forecaster) Grouped(from, to string, _ int, opts ...string) {}

func (f *forecaster) Unnamed(string, int) {}

func (f *forecaster) Callback(fn func(a, b int) error) {}

func TestOf(t *testing.T) {
	t.Parallel()

	ptr := reflect.TypeOf(&forecaster{})

	sig, err := signature.Of(ptr, "Forecast")
	require.NoError(t, err)
	assert.Equal(t, "Forecast(ctx context.Context, city string, days int)", sig)
	assert.Equal(t, []string{"ctx", "city", "days"}, signature.ParamNames(sig))

	// value receiver through the pointer method set
	sig, err = signature.Of(ptr, "Grouped")
	require.NoError(t, err)
	assert.Equal(t, "Grouped(from string, to string, _ int, opts ...string)", sig)

	sig, err = signature.Of(reflect.TypeOf(forecaster{}), "Grouped")
	require.NoError(t, err)
	assert.Equal(t, "Grouped(from string, to string, _ int, opts ...string)", sig)

	sig, err = signature.Of(ptr, "Unnamed")
	require.NoError(t, err)
	assert.Equal(t, "Unnamed(_ string, _ int)", sig)

	sig, err = signature.Of(ptr, "Callback")
	require.NoError(t, err)
	assert.Equal(t, []string{"fn"}, signature.ParamNames(sig))
}

func TestOf_NotFound(t *testing.T) {
	t.Parallel()

	_, err := signature.Of(nil, "Forecast")
	assert.True(t, errors.Is(err, signature.ErrSourceNotFound))

	_, err = signature.Of(reflect.TypeOf(&forecaster{}), "Missing")
	assert.True(t, errors.Is(err, signature.ErrSourceNotFound))

	// pointer receiver methods are not in the value method set
	_, err = signature.Of(reflect.TypeOf(forecaster{}), "Forecast")
	assert.True(t, errors.Is(err, signature.ErrSourceNotFound))

	_, err = signature.Of(reflect.TypeOf((*context.Context)(nil)).Elem(), "Done")
	assert.True(t, errors.Is(err, signature.ErrSourceNotFound))
}
