package catalog

import (
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
	"github.com/effective-security/llmtools/pkg/llms"
	"github.com/effective-security/llmtools/pkg/llmutils"
)

// ErrSealed is returned when tools are appended to a sealed catalog.
var ErrSealed = errors.New("tool catalog is sealed")

// Default is the process-wide catalog.
var Default = New()

// Catalog is the ordered list of discovered tools.
// It is written once by a Loader and sealed afterwards.
type Catalog struct {
	lock   sync.RWMutex
	tools  []*ToolDefinition
	sealed bool
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{}
}

// Append adds the definitions at the end of the catalog.
func (c *Catalog) Append(defs ...*ToolDefinition) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.sealed {
		return errors.WithStack(ErrSealed)
	}
	c.tools = append(c.tools, defs...)
	return nil
}

// Seal makes the catalog read-only.
func (c *Catalog) Seal() {
	c.lock.Lock()
	c.sealed = true
	c.lock.Unlock()
}

// Sealed returns true when the catalog is read-only.
func (c *Catalog) Sealed() bool {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.sealed
}

// Tools returns a copy of the list of tools.
func (c *Catalog) Tools() []*ToolDefinition {
	c.lock.RLock()
	defer c.lock.RUnlock()
	list := make([]*ToolDefinition, len(c.tools))
	copy(list, c.tools)
	return list
}

// Len returns the number of tools.
func (c *Catalog) Len() int {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return len(c.tools)
}

// Get returns the first tool with the name.
func (c *Catalog) Get(name string) (*ToolDefinition, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	for _, t := range c.tools {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Names returns the tool names in catalog order.
func (c *Catalog) Names() []string {
	c.lock.RLock()
	defer c.lock.RUnlock()
	names := make([]string, len(c.tools))
	for i, t := range c.tools {
		names[i] = t.Name
	}
	return names
}

// FunctionDefinitions returns the provider neutral tools in catalog order.
func (c *Catalog) FunctionDefinitions() []llms.Tool {
	c.lock.RLock()
	defer c.lock.RUnlock()
	list := make([]llms.Tool, len(c.tools))
	for i, t := range c.tools {
		list[i] = t.Tool()
	}
	return list
}

type toolDescription struct {
	Name        string `json:"Name" yaml:"Name"`
	Description string `json:"Description" yaml:"Description"`
}

type toolDescriptions struct {
	Tools []toolDescription `json:"Tools" yaml:"Tools"`
}

// Describe returns the names and descriptions of the tools
// as JSON in backticks, to be used in a prompt.
func (c *Catalog) Describe() string {
	return llmutils.BackticksJSON(llmutils.ToJSONIndent(c.descriptions()))
}

// DescribeYAML returns the names and descriptions of the tools
// as YAML in backticks, to be used in a prompt.
func (c *Catalog) DescribeYAML() string {
	return llmutils.BackticksYAML(llmutils.ToYAML(c.descriptions()))
}

func (c *Catalog) descriptions() toolDescriptions {
	c.lock.RLock()
	defer c.lock.RUnlock()
	res := toolDescriptions{
		Tools: make([]toolDescription, len(c.tools)),
	}
	for i, t := range c.tools {
		res.Tools[i] = toolDescription{Name: t.Name, Description: t.Description}
	}
	return res
}

// ETag returns a hash of the function definitions,
// which changes when any tool name, description or parameter changes.
func (c *Catalog) ETag() string {
	js := llmutils.ToJSON(c.FunctionDefinitions())
	return strconv.FormatUint(xxhash.Sum64String(js), 16)
}
