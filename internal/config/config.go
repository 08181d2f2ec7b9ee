// Package config loads batch configuration from a YAML file with
// environment variable defaults.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config mirrors the recognized batch options. Values resolve with
// precedence: command-line flags > REFPAGE_* environment variables > the
// YAML file. The loaded config is passed down explicitly; there is no
// process-global configuration state.
type Config struct {
	Template        string `yaml:"template,omitempty"`
	OutputDir       string `yaml:"output_dir,omitempty"`
	IncludeAbstract bool   `yaml:"include_abstract,omitempty"`
	HTMLTemplate    string `yaml:"html_template,omitempty"`
	HTMLOutput      string `yaml:"html_output,omitempty"`
	CombinedBib     string `yaml:"combined_bib,omitempty"`
	CombinedRIS     string `yaml:"combined_ris,omitempty"`
	AllToBib        string `yaml:"all_to_bib,omitempty"`
	LogLevel        string `yaml:"log_level,omitempty"`
}

// Load reads the config file at path and applies environment overrides.
// An empty path yields a config built from the environment alone.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides fields from REFPAGE_* environment variables.
func (c *Config) applyEnv() {
	setString := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	setString(&c.Template, "REFPAGE_TEMPLATE")
	setString(&c.OutputDir, "REFPAGE_OUTPUT_DIR")
	setString(&c.HTMLTemplate, "REFPAGE_HTML_TEMPLATE")
	setString(&c.HTMLOutput, "REFPAGE_HTML_OUTPUT")
	setString(&c.CombinedBib, "REFPAGE_COMBINED_BIB")
	setString(&c.CombinedRIS, "REFPAGE_COMBINED_RIS")
	setString(&c.AllToBib, "REFPAGE_ALL_TO_BIB")
	setString(&c.LogLevel, "REFPAGE_LOG_LEVEL")

	if v, ok := os.LookupEnv("REFPAGE_INCLUDE_ABSTRACT"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.IncludeAbstract = b
		}
	}
}
