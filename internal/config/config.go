// Package config loads generator configuration for the stringver CLI using
// koanf. Values are layered with priority: environment variables >
// project config (.stringver.yml) > defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	goyaml "gopkg.in/yaml.v3"

	"github.com/verifykit/stringver"
	"github.com/verifykit/stringver/internal/extract"
)

// DefaultConfigFile is the project config path probed when no --config flag
// is given.
const DefaultConfigFile = ".stringver.yml"

// Config holds the generator settings applied to emitted scaffolds.
type Config struct {
	// Pattern is the field value extraction pattern; must contain exactly
	// two %s placeholders. Can be set via STRINGVER_PATTERN.
	Pattern string `koanf:"pattern"`

	// NullValue is the sentinel expected in place of nil field values.
	// Empty means no sentinel option is emitted.
	NullValue string `koanf:"null_value"`

	// ClassName is the class name check style: "none", "name" or "simple".
	ClassName string `koanf:"class_name"`

	// HashCode enables the identity hash check in emitted scaffolds.
	HashCode bool `koanf:"hash_code"`

	// IncludeInherited controls verification of fields promoted from
	// embedded structs.
	IncludeInherited bool `koanf:"include_inherited"`

	// Output is the scaffold file name written into each scanned package.
	Output string `koanf:"output"`

	// MaxParallel bounds concurrent package scans.
	MaxParallel int `koanf:"max_parallel"`
}

// Defaults returns the built-in configuration values.
func Defaults() map[string]any {
	return map[string]any{
		"pattern":           stringver.DefaultFieldValuePattern,
		"null_value":        "",
		"class_name":        "none",
		"hash_code":         false,
		"include_inherited": true,
		"output":            "stringer_verify_test.go",
		"max_parallel":      4,
	}
}

// Load reads configuration from defaults, the project config file, and
// STRINGVER_* environment variables, in ascending priority. An empty path
// probes DefaultConfigFile; a missing explicit path is an error while a
// missing default path is not.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	for key, value := range Defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	if fileExists(path) {
		if err := validateYAMLSyntax(path); err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	if err := k.Load(env.Provider("STRINGVER_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration eagerly so mistakes surface at load
// time, not inside a generated scaffold.
func (c *Config) Validate() error {
	if _, err := extract.CompilePattern(c.Pattern); err != nil {
		return fmt.Errorf("pattern: %w", err)
	}
	switch c.ClassName {
	case "none", "name", "simple":
	default:
		return fmt.Errorf("class_name must be one of none, name, simple; got %q", c.ClassName)
	}
	if c.MaxParallel < 1 {
		return fmt.Errorf("max_parallel must be at least 1; got %d", c.MaxParallel)
	}
	if !strings.HasSuffix(c.Output, "_test.go") {
		return fmt.Errorf("output must be a _test.go file; got %q", c.Output)
	}
	return nil
}

// NameStyle maps the configured class name style onto the verifier's enum.
func (c *Config) NameStyle() stringver.NameStyle {
	switch c.ClassName {
	case "name":
		return stringver.NameStyleName
	case "simple":
		return stringver.NameStyleSimpleName
	default:
		return stringver.NameStyleNone
	}
}

// OptionCalls renders the configuration as chained verifier option calls for
// the scaffold template. Defaults produce no calls, keeping generated files
// minimal.
func (c *Config) OptionCalls() []string {
	var calls []string
	if c.ClassName == "name" {
		calls = append(calls, "WithClassName(stringver.NameStyleName)")
	}
	if c.ClassName == "simple" {
		calls = append(calls, "WithClassName(stringver.NameStyleSimpleName)")
	}
	if c.HashCode {
		calls = append(calls, "WithHashCode(true)")
	}
	if c.Pattern != stringver.DefaultFieldValuePattern {
		calls = append(calls, fmt.Sprintf("WithFieldValuePattern(%q)", c.Pattern))
	}
	if c.NullValue != "" {
		calls = append(calls, fmt.Sprintf("WithNullValue(%q)", c.NullValue))
	}
	if !c.IncludeInherited {
		calls = append(calls, "WithInheritedFields(false)")
	}
	return calls
}

// validateYAMLSyntax rejects malformed YAML with a pointed error before
// koanf merges the file.
func validateYAMLSyntax(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	var probe any
	if err := goyaml.Unmarshal(raw, &probe); err != nil {
		return fmt.Errorf("config %s is not valid YAML: %w", path, err)
	}
	return nil
}

// envTransform maps STRINGVER_NULL_VALUE to null_value.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "STRINGVER_"))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
