// Package openai converts catalog tools to OpenAI function tools.
package openai

import (
	"github.com/cockroachdb/errors"
	"github.com/effective-security/llmtools/pkg/llms"
	"github.com/effective-security/llmtools/pkg/schema"
	oa "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/shared"
)

// ToTools converts tool definitions to OpenAI function tools.
// Tools of other types than function are ignored.
func ToTools(tools []llms.Tool) ([]oa.ChatCompletionToolUnionParam, error) {
	if len(tools) == 0 {
		return nil, nil
	}

	out := make([]oa.ChatCompletionToolUnionParam, 0, len(tools))
	for _, t := range tools {
		if t.Type != llms.ToolTypeFunction || t.Function == nil {
			continue
		}
		fn := shared.FunctionDefinitionParam{Name: t.Function.Name}
		if t.Function.Description != "" {
			fn.Description = oa.String(t.Function.Description)
		}
		if t.Function.Strict {
			fn.Strict = oa.Bool(true)
		}
		if t.Function.Parameters != nil {
			params, err := schema.ToMap(t.Function.Parameters)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to convert parameters of %s", t.Function.Name)
			}
			fn.Parameters = params
		}
		out = append(out, oa.ChatCompletionFunctionTool(fn))
	}
	return out, nil
}
