// Package anthropic converts catalog tools to Anthropic tool parameters.
package anthropic

import (
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/effective-security/llmtools/pkg/llms"
)

// ToTools converts tool definitions to Anthropic SDK tool parameters.
// Tools of other types than function are ignored.
func ToTools(tools []llms.Tool) []anthropic.ToolUnionParam {
	if len(tools) == 0 {
		return nil
	}

	sdkTools := make([]anthropic.ToolUnionParam, 0, len(tools))
	for _, tool := range tools {
		if tool.Type != llms.ToolTypeFunction || tool.Function == nil {
			continue
		}

		inputSchema := anthropic.ToolInputSchemaParam{
			Type: "object",
		}
		if params := tool.Function.Parameters; params != nil {
			// Convert Properties from orderedmap to regular map for Anthropic SDK
			if params.Properties != nil {
				properties := make(map[string]any, params.Properties.Len())
				for pair := params.Properties.Oldest(); pair != nil; pair = pair.Next() {
					properties[pair.Key] = pair.Value
				}
				inputSchema.Properties = properties
			}
			if len(params.Required) > 0 {
				inputSchema.Required = params.Required
			}
		}

		toolParam := &anthropic.ToolParam{
			Name:        tool.Function.Name,
			InputSchema: inputSchema,
		}
		if tool.Function.Description != "" {
			toolParam.Description = anthropic.String(tool.Function.Description)
		}
		sdkTools = append(sdkTools, anthropic.ToolUnionParam{OfTool: toolParam})
	}
	return sdkTools
}
