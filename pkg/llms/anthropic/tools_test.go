package anthropic

import (
	"testing"

	"github.com/effective-security/llmtools/pkg/llms"
	"github.com/effective-security/llmtools/pkg/schema"
	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToTools(t *testing.T) {
	assert.Nil(t, ToTools(nil))

	props := jsonschema.NewProperties()
	props.Set("city", &jsonschema.Schema{Type: "string", Description: "city name"})

	tools := []llms.Tool{
		llms.NewFunctionTool(&llms.FunctionDefinition{
			Name:        "Weather_current",
			Description: "current weather",
			Parameters:  schema.Object(props, []string{"city"}),
		}),
		{Type: "retrieval"},
		llms.NewFunctionTool(&llms.FunctionDefinition{
			Name: "Weather_ping",
		}),
	}

	res := ToTools(tools)
	require.Len(t, res, 2)

	tool := res[0].OfTool
	require.NotNil(t, tool)
	assert.Equal(t, "Weather_current", tool.Name)
	assert.Equal(t, "current weather", tool.Description.Value)
	assert.Equal(t, []string{"city"}, tool.InputSchema.Required)
	properties, ok := tool.InputSchema.Properties.(map[string]any)
	require.True(t, ok)
	require.Contains(t, properties, "city")
	assert.Equal(t, "city name", properties["city"].(*jsonschema.Schema).Description)

	tool = res[1].OfTool
	require.NotNil(t, tool)
	assert.Equal(t, "Weather_ping", tool.Name)
	assert.False(t, tool.Description.Valid())
	assert.Nil(t, tool.InputSchema.Properties)
	assert.Empty(t, tool.InputSchema.Required)
}
