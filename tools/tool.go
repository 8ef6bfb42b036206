package tools

import (
	"reflect"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/llmtools/annotations"
	"github.com/effective-security/xlog"
	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/llmtools", "tools")

// Metadata keys used in annotations.Store
const (
	MetaKeyTool  = "llmtools:tool"
	MetaKeyParam = "llmtools:tool_param"
)

// ErrConfiguration is returned when a tool or a tool parameter
// can not be registered as declared.
var ErrConfiguration = errors.New("invalid tool configuration")

// ToolMethod is attached to a method exposed as a tool.
type ToolMethod struct {
	// Description is the human-readable description of the tool, to be used in the prompt.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Param describes a parameter of a tool method.
type Param struct {
	// Index is the position of the parameter, the receiver is not counted.
	Index int `json:"index" yaml:"index"`
	// Name is the parameter name.
	Name string `json:"name" yaml:"name"`
	// Type is the JSON schema of the parameter value.
	Type *jsonschema.Schema `json:"type" yaml:"type"`
	// GoType is the Go type the schema was derived from, if any.
	GoType reflect.Type `json:"-" yaml:"-"`
	// Description is the optional description of the parameter.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Params maps the parameter index to its description,
// ordered by index.
type Params = *orderedmap.OrderedMap[int, *Param]

// NewParams returns empty Params
func NewParams() Params {
	return orderedmap.New[int, *Param]()
}

// ToolOf returns the tool mark of the method, if any.
func ToolOf(store *annotations.Store, key annotations.MemberKey) (*ToolMethod, bool) {
	v, ok := store.MethodMeta(key, MetaKeyTool)
	if !ok {
		return nil, false
	}
	tm, ok := v.(*ToolMethod)
	return tm, ok
}

// ParamsOf returns the parameters recorded for the method, ordered by index.
// The result is empty when no parameter was recorded.
func ParamsOf(store *annotations.Store, key annotations.MemberKey) Params {
	meta := store.ParamMeta(key, MetaKeyParam)

	indexes := make([]int, 0, len(meta))
	for idx := range meta {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)

	params := NewParams()
	for _, idx := range indexes {
		if p, ok := meta[idx].(*Param); ok {
			params.Set(idx, p)
		}
	}
	return params
}
