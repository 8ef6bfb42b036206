package encoding

import (
	"reflect"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/effective-security/llmtools/catalog"
	"github.com/effective-security/llmtools/tools"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Arguments are tool call arguments keyed by parameter name, in index order
type Arguments = *orderedmap.OrderedMap[string, any]

// ExampleArguments returns fake arguments for a call of the tool.
// Enumerated parameters take the first allowed value;
// parameters without a Go type take the zero value of the schema type.
func ExampleArguments(def *catalog.ToolDefinition) Arguments {
	args := orderedmap.New[string, any]()
	for _, p := range def.ParamList() {
		args.Set(p.Name, exampleValue(p))
	}
	return args
}

// Examples returns the example arguments of each tool, keyed by tool name
func Examples(defs []*catalog.ToolDefinition) *orderedmap.OrderedMap[string, Arguments] {
	res := orderedmap.New[string, Arguments]()
	for _, def := range defs {
		res.Set(def.Name, ExampleArguments(def))
	}
	return res
}

func exampleValue(p *tools.Param) any {
	if p.Type != nil && len(p.Type.Enum) > 0 {
		return p.Type.Enum[0]
	}
	if p.GoType != nil {
		v := reflect.New(p.GoType)
		if err := gofakeit.Struct(v.Interface()); err == nil {
			return v.Elem().Interface()
		}
	}
	if p.Type == nil {
		return nil
	}
	switch p.Type.Type {
	case "string":
		return ""
	case "integer", "number":
		return 0
	case "boolean":
		return false
	case "array":
		return []any{}
	case "object":
		return map[string]any{}
	}
	return nil
}
