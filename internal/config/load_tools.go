package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

// LoadTools reads a tools YAML file and returns the tool specs it defines,
// replacing the built-in table. The file holds a top-level `tools:` list in
// the same shape as ToolSpec; this is what keeps the fragile resolver
// patterns updatable without a rebuild when a third-party download page
// changes its layout.
func LoadTools(path string) []ToolSpec {
	raw, err := os.ReadFile(path)
	if err != nil {
		panic("Failed to read tools file: " + err.Error())
	}

	var wrapper struct {
		Tools []ToolSpec `yaml:"tools"`
	}
	if err := yaml.Unmarshal(raw, &wrapper); err != nil {
		panic("Failed to unmarshal tools file: " + err.Error())
	}

	return wrapper.Tools
}
