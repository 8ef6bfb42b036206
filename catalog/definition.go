package catalog

import (
	"github.com/effective-security/llmtools/pkg/llms"
	"github.com/effective-security/llmtools/pkg/schema"
	"github.com/effective-security/llmtools/tools"
	"github.com/invopop/jsonschema"
)

// ToolDefinition describes a method exposed as a tool.
type ToolDefinition struct {
	// Name is the tool name, the method identifier.
	Name string `json:"name" yaml:"name"`
	// Class is the name of the type declaring the method.
	Class string `json:"class" yaml:"class"`
	// Method is the method name.
	Method string `json:"method" yaml:"method"`
	// Description is the tool description.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Parameters are the described parameters, ordered by index.
	Parameters tools.Params `json:"parameters" yaml:"parameters"`
}

// ParamList returns the parameters ordered by index.
func (d *ToolDefinition) ParamList() []*tools.Param {
	if d.Parameters == nil {
		return nil
	}
	list := make([]*tools.Param, 0, d.Parameters.Len())
	for pair := d.Parameters.Oldest(); pair != nil; pair = pair.Next() {
		list = append(list, pair.Value)
	}
	return list
}

// InputSchema returns the object schema of the tool arguments:
// one property per parameter, in index order, all of them required.
func (d *ToolDefinition) InputSchema() *jsonschema.Schema {
	props := jsonschema.NewProperties()
	var required []string
	for _, p := range d.ParamList() {
		if _, exists := props.Get(p.Name); !exists {
			required = append(required, p.Name)
		}
		props.Set(p.Name, schema.WithDescription(p.Type, p.Description))
	}
	return schema.Object(props, required)
}

// FunctionDefinition returns the provider neutral function definition of the tool.
func (d *ToolDefinition) FunctionDefinition() *llms.FunctionDefinition {
	return &llms.FunctionDefinition{
		Name:        d.Name,
		Description: d.Description,
		Parameters:  d.InputSchema(),
	}
}

// Tool returns the provider neutral tool.
func (d *ToolDefinition) Tool() llms.Tool {
	return llms.NewFunctionTool(d.FunctionDefinition())
}
