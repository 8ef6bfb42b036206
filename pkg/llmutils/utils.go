package llmutils

import (
	"bytes"
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

func ToJSON(val any) string {
	js, _ := json.Marshal(val)
	return string(js)
}

func ToJSONIndent(val any) string {
	js, _ := json.MarshalIndent(val, "", "\t")
	return string(js)
}

func ToYAML(val any) string {
	js, _ := yaml.Marshal(val)
	return string(js)
}

// BackticksJSON wraps JSON into a fenced block, to be used in a prompt
func BackticksJSON(js string) string {
	return "\n```json\n" + strings.TrimSpace(js) + "\n```\n"
}

// BackticksYAML wraps YAML into a fenced block, to be used in a prompt
func BackticksYAML(js string) string {
	return "\n```yaml\n" + strings.TrimSpace(js) + "\n```\n"
}

var backtick = []byte("```")

// TrimBackticks removes the fence of a ```json, ```yaml or ``` block
func TrimBackticks(text string) string {
	return string(BytesTrimBackticks([]byte(text)))
}

// BytesTrimBackticks removes the fence of a ```json, ```yaml or ``` block
func BytesTrimBackticks(bs []byte) []byte {
	trimmed := bytes.TrimSpace(bs)
	if !bytes.HasPrefix(trimmed, backtick) {
		return bs
	}
	trimmed = trimmed[len(backtick):]

	// skip the language tag
	if i := bytes.IndexByte(trimmed, '\n'); i >= 0 {
		trimmed = trimmed[i+1:]
	} else {
		return nil
	}
	if i := bytes.LastIndex(trimmed, backtick); i >= 0 {
		trimmed = trimmed[:i]
	}
	return bytes.TrimSpace(trimmed)
}
