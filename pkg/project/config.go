// Package project loads and validates the flowlint.yml project configuration.
package project

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/flowlint/flowlint/pkg/fileutil"
	"github.com/flowlint/flowlint/pkg/logger"
)

var configLog = logger.New("project:config")

// Credential declares a credential workflows may reference by name.
type Credential struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`
}

// Config is the project configuration file.
type Config struct {
	Name          string       `yaml:"name" json:"name"`
	EngineVersion string       `yaml:"engineVersion" json:"engineVersion,omitempty"`
	Workflows     []string     `yaml:"workflows" json:"workflows,omitempty"`
	Credentials   []Credential `yaml:"credentials" json:"credentials,omitempty"`
}

// HasCredential reports whether a credential name is declared.
func (c *Config) HasCredential(name string) bool {
	for _, cred := range c.Credentials {
		if cred.Name == name {
			return true
		}
	}
	return false
}

// Load reads and decodes the project configuration inside dir. The boolean
// return mirrors fileutil.FindProjectConfig: false means no configuration
// file exists, which callers report differently from a malformed one.
func Load(dir string) (*Config, string, error) {
	path, ok := fileutil.FindProjectConfig(dir)
	if !ok {
		return nil, "", os.ErrNotExist
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("reading project config %s: %w", path, err)
	}

	cfg, err := Decode(raw)
	if err != nil {
		return nil, path, err
	}
	configLog.Printf("Loaded project config %s: %d workflows, %d credentials", path, len(cfg.Workflows), len(cfg.Credentials))
	return cfg, path, nil
}

// Decode parses configuration text, validating it against the embedded
// schema first so structural mistakes surface with schema paths instead of
// decoder messages.
func Decode(raw []byte) (*Config, error) {
	if err := ValidateSchema(raw); err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decoding project config: %w", err)
	}
	return &cfg, nil
}
