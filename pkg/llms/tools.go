package llms

import "github.com/invopop/jsonschema"

// ToolTypeFunction is the only tool type produced by the catalog.
const ToolTypeFunction = "function"

// Tool is a tool that can be used by the model.
type Tool struct {
	// Type is the type of the tool.
	Type string `json:"type"`
	// Function is the function to call.
	Function *FunctionDefinition `json:"function,omitempty"`
}

// FunctionDefinition is a definition of a function that can be called by the model.
type FunctionDefinition struct {
	// Name is the name of the function.
	Name string `json:"name"`
	// Description is a description of the function.
	Description string `json:"description"`
	// Parameters is the JSON schema of the function arguments.
	Parameters *jsonschema.Schema `json:"parameters,omitempty"`
	// Strict is a flag to indicate if the function should be called strictly. Only used for openai.
	Strict bool `json:"strict,omitempty"`
}

// ToolChoice is a specific tool to use.
type ToolChoice struct {
	// Type is the type of the tool.
	Type string `json:"type"`
	// Function is the function to call (if the tool is a function).
	Function *FunctionReference `json:"function,omitempty"`
}

// FunctionReference is a reference to a function.
type FunctionReference struct {
	// Name is the name of the function.
	Name string `json:"name"`
}

// NewFunctionTool returns a function tool for the definition.
func NewFunctionTool(def *FunctionDefinition) Tool {
	return Tool{
		Type:     ToolTypeFunction,
		Function: def,
	}
}

// ChooseFunction returns a tool choice forcing the named function.
func ChooseFunction(name string) *ToolChoice {
	return &ToolChoice{
		Type:     ToolTypeFunction,
		Function: &FunctionReference{Name: name},
	}
}
