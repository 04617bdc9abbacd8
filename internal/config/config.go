package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds project-level settings loaded from astdocs.yml.
// Command-line flags override any value set here.
type ProjectConfig struct {
	OutputPath       string   `yaml:"outputPath,omitempty"`
	GraphOutput      string   `yaml:"graphOutput,omitempty"`
	GraphJSONOutput  string   `yaml:"graphJsonOutput,omitempty"`
	Languages        []string `yaml:"languages,omitempty"`
	Workers          int      `yaml:"workers,omitempty"`
	MettaOnly        bool     `yaml:"mettaOnly,omitempty"`
	IncludeVariables bool     `yaml:"includeVariables,omitempty"`
	Verbose          bool     `yaml:"verbose,omitempty"`
}

// Load attempts to read astdocs.yml or astdocs.yaml from the given directory.
// Returns a zero-value config (not an error) if no config file exists.
func Load(dir string) (*ProjectConfig, error) {
	for _, name := range []string{"astdocs.yml", "astdocs.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg ProjectConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &ProjectConfig{}, nil
}
