package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/effective-security/llmtools/callbacks"
	"github.com/effective-security/llmtools/encoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_Formats(t *testing.T) {
	for _, mode := range encoding.Modes() {
		t.Run(mode, func(t *testing.T) {
			out, _, err := run(t, "--format", mode)
			require.NoError(t, err)

			doc, err := encoding.Unmarshal(mode, []byte(out))
			require.NoError(t, err)
			assert.Equal(t, []string{"Current", "Forecast", "Add", "Divide", "Evaluate"}, doc.Names())
			assert.Equal(t, "Weather", doc.Tools[0].Class)
		})
	}
}

func TestRoot_PrefixClassName(t *testing.T) {
	dir := t.TempDir()
	for _, prefix := range []string{"true", "false"} {
		cfgFile := filepath.Join(dir, "config_"+prefix+".yaml")
		require.NoError(t, os.WriteFile(cfgFile, []byte("prefix_class_name: "+prefix+"\n"), 0o600))

		out, _, err := run(t, "--config", cfgFile, "--format", "yaml")
		require.NoError(t, err)
		doc, err := encoding.Unmarshal(encoding.ModeYAML, []byte(out))
		require.NoError(t, err)
		assert.Equal(t, []string{"Current", "Forecast", "Add", "Divide", "Evaluate"}, doc.Names())
		assert.Equal(t, "Weather", doc.Tools[0].Class)
		assert.Equal(t, "Current", doc.Tools[0].Method)
	}
}

func TestRoot_Providers(t *testing.T) {
	for _, format := range []string{FormatFunctions, FormatOpenAI, FormatAnthropic} {
		t.Run(format, func(t *testing.T) {
			out, _, err := run(t, "-f", format)
			require.NoError(t, err)

			var list []map[string]any
			require.NoError(t, json.Unmarshal([]byte(out), &list))
			assert.Len(t, list, 5)
			assert.Contains(t, out, `"Current"`)
			assert.Contains(t, out, `"city"`)
		})
	}

	out, _, err := run(t, "-f", FormatDescribe)
	require.NoError(t, err)
	assert.Contains(t, out, "```json")
	assert.Contains(t, out, "Returns the current weather in a city")

	out, _, err = run(t, "-f", FormatDescribeYAML)
	require.NoError(t, err)
	assert.Contains(t, out, "```yaml")
	assert.Contains(t, out, "- Name: Current\n")
}

func TestRoot_Examples(t *testing.T) {
	out, _, err := run(t, "-f", FormatExamples)
	require.NoError(t, err)

	var examples map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &examples))
	assert.Len(t, examples, 5)
	require.Contains(t, examples, "Current")
	assert.Equal(t, "metric", examples["Current"]["units"])
	assert.Contains(t, examples["Current"], "city")
}

func TestRoot_Verbose(t *testing.T) {
	_, errOut, err := run(t, "-v")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Tool Discovered: Current (Weather.Current)")
	assert.Contains(t, errOut, "Catalog Built: 5 tools")
}

func TestNewCallback(t *testing.T) {
	var buf bytes.Buffer
	assert.IsType(t, &callbacks.PackageLogger{}, newCallback(&buf, false))
	assert.IsType(t, &callbacks.Fanout{}, newCallback(&buf, true))
}

func TestRoot_Errors(t *testing.T) {
	_, _, err := run(t, "-f", "xml")
	assert.EqualError(t, err, `"xml": unsupported encoding mode`)

	_, _, err = run(t, "-c", "testdata/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "toolcatalog v0.1.0\n", out)
}
