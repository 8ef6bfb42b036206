// Package encoding exports tool catalogs as JSON, YAML or TOML documents.
package encoding

import (
	"github.com/cockroachdb/errors"
	jsonenc "github.com/effective-security/llmtools/encoding/json"
	tomlenc "github.com/effective-security/llmtools/encoding/toml"
	yamlenc "github.com/effective-security/llmtools/encoding/yaml"
)

type Encoder interface {
	Marshal(v any) ([]byte, error)
	Unmarshal([]byte, any) error
	ContentType() string
}

type Mode = string

const (
	ModeJSON Mode = "json"
	ModeYAML Mode = "yaml"
	ModeTOML Mode = "toml"
)

// ModeDefault is the default mode for the encoder.
// Allow to override in apps
var ModeDefault = ModeJSON

// ErrUnsupportedMode is returned for an unknown encoding mode
var ErrUnsupportedMode = errors.New("unsupported encoding mode")

// Modes returns the supported modes
func Modes() []Mode {
	return []Mode{ModeJSON, ModeYAML, ModeTOML}
}

// NewEncoder returns the encoder for the mode,
// empty mode means ModeDefault
func NewEncoder(mode Mode) (Encoder, error) {
	if mode == "" {
		mode = ModeDefault
	}
	switch mode {
	case ModeJSON:
		return jsonenc.NewEncoder(), nil
	case ModeYAML:
		return yamlenc.NewEncoder().WithCommentStyle(yamlenc.LineComment), nil
	case ModeTOML:
		return tomlenc.NewEncoder(), nil
	}
	return nil, errors.Wrapf(ErrUnsupportedMode, "%q", mode)
}

var (
	_ Encoder = (*jsonenc.Encoder)(nil)
	_ Encoder = (*tomlenc.Encoder)(nil)
	_ Encoder = (*yamlenc.Encoder)(nil)
)
