package llmtools

import (
	"github.com/effective-security/x/configloader"
)

// Config of the tool catalog
type Config struct {
	// PrefixClassName is accepted at registration and passed to the loader.
	// Default is true. Tool names are the method identifiers either way.
	PrefixClassName *bool `json:"prefix_class_name,omitempty" yaml:"prefix_class_name,omitempty"`
}

// GetPrefixClassName returns PrefixClassName, or true if it is not set
func (c *Config) GetPrefixClassName() bool {
	if c == nil || c.PrefixClassName == nil {
		return true
	}
	return *c.PrefixClassName
}

// LoadConfig from file
func LoadConfig(file string) (*Config, error) {
	cfg := new(Config)
	if file == "" {
		return cfg, nil
	}

	err := configloader.UnmarshalAndExpand(file, cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
