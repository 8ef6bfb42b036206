package encoding

import (
	"github.com/cockroachdb/errors"
	"github.com/effective-security/llmtools/catalog"
	"github.com/effective-security/llmtools/pkg/llmutils"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Document is the exported catalog
type Document struct {
	Tools []Tool `json:"tools" yaml:"tools" toml:"tools" validate:"dive"`
}

// Tool is an exported tool definition
type Tool struct {
	Name        string      `json:"name" yaml:"name" toml:"name" comment:"tool name" validate:"required"`
	Class       string      `json:"class" yaml:"class" toml:"class" comment:"declaring type"`
	Method      string      `json:"method" yaml:"method" toml:"method" validate:"required"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Parameters  []Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty" toml:"parameters,omitempty" validate:"dive"`
}

// Parameter is an exported tool parameter
type Parameter struct {
	Index       int    `json:"index" yaml:"index" toml:"index" comment:"position, receiver excluded" validate:"gte=0"`
	Name        string `json:"name" yaml:"name" toml:"name" validate:"required"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	Schema      string `json:"schema" yaml:"schema" toml:"schema" comment:"JSON schema"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}

// NewDocument returns the document for the tool definitions
func NewDocument(defs []*catalog.ToolDefinition) *Document {
	doc := &Document{
		Tools: make([]Tool, 0, len(defs)),
	}
	for _, def := range defs {
		tool := Tool{
			Name:        def.Name,
			Class:       def.Class,
			Method:      def.Method,
			Description: def.Description,
		}
		for _, p := range def.ParamList() {
			param := Parameter{
				Index:       p.Index,
				Name:        p.Name,
				Schema:      llmutils.ToJSON(p.Type),
				Description: p.Description,
			}
			if p.Type != nil {
				param.Type = p.Type.Type
			}
			tool.Parameters = append(tool.Parameters, param)
		}
		doc.Tools = append(doc.Tools, tool)
	}
	return doc
}

// Validate checks that every tool and parameter is named
func (d *Document) Validate() error {
	if err := validate.Struct(d); err != nil {
		return errors.Wrap(err, "invalid document")
	}
	return nil
}

// Names returns the tool names
func (d *Document) Names() []string {
	names := make([]string, len(d.Tools))
	for i, t := range d.Tools {
		names[i] = t.Name
	}
	return names
}

// Marshal returns the tool definitions encoded in the mode
func Marshal(mode Mode, defs []*catalog.ToolDefinition) ([]byte, error) {
	enc, err := NewEncoder(mode)
	if err != nil {
		return nil, err
	}
	return enc.Marshal(NewDocument(defs))
}

// Unmarshal decodes a document encoded in the mode
func Unmarshal(mode Mode, data []byte) (*Document, error) {
	enc, err := NewEncoder(mode)
	if err != nil {
		return nil, err
	}
	doc := new(Document)
	if err = enc.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	if err = doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}
