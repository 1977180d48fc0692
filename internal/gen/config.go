// Package gen generates the fixed-arity facade of the tuple package.
//
// The generator reads a tuplegen.yaml configuration, renders one function
// per family and arity from text templates, and runs the result through
// goimports so the checked-in file is byte-stable across regenerations.
package gen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Function families the generator can emit.
const (
	FamilyConstructors = "constructors" // Of1..OfN
	FamilyUnpackers    = "unpackers"    // To1..ToN
	FamilyAppliers     = "appliers"     // Apply1..ApplyN
)

// maxSupportedArity bounds generated arities. Above this the facade stops
// pulling its weight and callers should use the dynamic API.
const maxSupportedArity = 26

// Config represents the top-level tuplegen.yaml configuration.
type Config struct {
	// Package is the Go package name the generated file declares.
	Package string `yaml:"package"`

	// Output is the filename the generated source is written to, relative
	// to the working directory. Defaults to "arity_gen.go"; the -out flag
	// overrides it.
	Output string `yaml:"output,omitempty"`

	// MaxArity is the highest arity to generate, inclusive. Every family
	// is emitted for each arity from 1 through MaxArity.
	MaxArity int `yaml:"max_arity"`

	// Families lists the function families to emit. Defaults to all three
	// when omitted.
	Families []string `yaml:"families,omitempty"`
}

// LoadConfig reads and parses a tuplegen.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses tuplegen.yaml content from bytes.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return &cfg, nil
}

// validate checks the configuration for semantic errors.
func (c *Config) validate(path string) error {
	if c.Package == "" {
		return fmt.Errorf("%s: package is required", path)
	}
	if c.MaxArity < 1 || c.MaxArity > maxSupportedArity {
		return fmt.Errorf("%s: max_arity must be between 1 and %d, got %d", path, maxSupportedArity, c.MaxArity)
	}

	seen := make(map[string]bool)
	for i, family := range c.Families {
		switch family {
		case FamilyConstructors, FamilyUnpackers, FamilyAppliers:
		default:
			return fmt.Errorf("%s: families[%d]: unknown family %q", path, i, family)
		}
		if seen[family] {
			return fmt.Errorf("%s: families[%d]: duplicate family %q", path, i, family)
		}
		seen[family] = true
	}
	return nil
}

// setDefaults fills in default values for omitted fields.
func (c *Config) setDefaults() {
	if c.Output == "" {
		c.Output = "arity_gen.go"
	}
	if len(c.Families) == 0 {
		c.Families = []string{FamilyConstructors, FamilyUnpackers, FamilyAppliers}
	}
}

// Emits reports whether the configuration includes the given family.
func (c *Config) Emits(family string) bool {
	for _, f := range c.Families {
		if f == family {
			return true
		}
	}
	return false
}
