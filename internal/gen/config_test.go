package gen

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseConfig(t *testing.T) {
	data := []byte(`package: tuple
output: arity_gen.go
max_arity: 8
families:
  - constructors
  - unpackers
  - appliers
`)

	cfg, err := ParseConfig(data, "tuplegen.yaml")
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if cfg.Package != "tuple" {
		t.Errorf("Package = %q, want %q", cfg.Package, "tuple")
	}
	if cfg.Output != "arity_gen.go" {
		t.Errorf("Output = %q, want %q", cfg.Output, "arity_gen.go")
	}
	if cfg.MaxArity != 8 {
		t.Errorf("MaxArity = %d, want 8", cfg.MaxArity)
	}
	want := []string{FamilyConstructors, FamilyUnpackers, FamilyAppliers}
	if !reflect.DeepEqual(cfg.Families, want) {
		t.Errorf("Families = %v, want %v", cfg.Families, want)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("package: tuple\nmax_arity: 3\n"), "tuplegen.yaml")
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if cfg.Output != "arity_gen.go" {
		t.Errorf("default Output = %q, want %q", cfg.Output, "arity_gen.go")
	}
	if len(cfg.Families) != 3 {
		t.Errorf("default Families = %v, want all three", cfg.Families)
	}
	for _, family := range []string{FamilyConstructors, FamilyUnpackers, FamilyAppliers} {
		if !cfg.Emits(family) {
			t.Errorf("Emits(%q) = false, want true", family)
		}
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"missing package", "max_arity: 4\n", "package is required"},
		{"zero arity", "package: tuple\nmax_arity: 0\n", "max_arity must be between 1 and 26, got 0"},
		{"arity too high", "package: tuple\nmax_arity: 27\n", "max_arity must be between 1 and 26, got 27"},
		{"unknown family", "package: tuple\nmax_arity: 2\nfamilies: [movers]\n", `families[0]: unknown family "movers"`},
		{"duplicate family", "package: tuple\nmax_arity: 2\nfamilies: [unpackers, unpackers]\n", `families[1]: duplicate family "unpackers"`},
		{"malformed yaml", "package: [\n", "parsing tuplegen.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data), "tuplegen.yaml")
			if err == nil {
				t.Fatalf("ParseConfig succeeded, want error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("does-not-exist.yaml")
	if err == nil {
		t.Fatalf("LoadConfig succeeded, want error")
	}
	if !strings.Contains(err.Error(), "reading config does-not-exist.yaml") {
		t.Errorf("error = %q, want a reading config error", err.Error())
	}
}
