package gen

import (
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

// typedescImport is the descriptor package generated constructors and
// appliers capture element types with. Unpackers never reference it;
// goimports drops the import when no emitted family uses it.
const typedescImport = "github.com/funvibe/funtuple/pkg/typedesc"

const constructorSrc = `// Of{{.N}} builds {{.Article}} {{.N}}-slot tuple whose element types are the declared type
// parameters rather than the values' dynamic types.
func Of{{.N}}[{{.TypeParams}}]({{.ValueParams}}) Tuple {
	return Tuple{slots: []slot{
{{- range .Slots}}
		{val: v{{.}}, typ: typedesc.Of[T{{.}}]()},
{{- end}}
	}}
}
`

const unpackerSrc = `// To{{.N}} unpacks {{.Article}} {{.N}}-slot tuple into its declared element types.
func To{{.N}}[{{.TypeParams}}](t Tuple) ({{.Results}}) {
{{- range .Slots}}
	var v{{.}} T{{.}}
{{- end}}
	if t.Len() != {{.N}} {
		return {{.ValueList}}, &LengthMismatchError{A: {{.N}}, B: t.Len()}
	}
	var err error
{{- range .Slots}}
	if v{{.}}, err = Get[T{{.}}](t, {{.}}); err != nil {
		return {{$.ValueList}}, err
	}
{{- end}}
	return {{.ValueList}}, nil
}
`

const applierSrc = `// Apply{{.N}} spreads {{.Article}} {{.N}}-slot tuple over fn and returns its result. Slots
// bind to parameters under assignability rules before fn runs.
func Apply{{.N}}[{{.TypeList}}, R any](fn {{.FuncType}}, t Tuple) (R, error) {
	var zero R
	if fn == nil {
		return zero, &NotFuncError{Got: typedesc.Of[{{.FuncType}}]()}
	}
	if t.Len() != {{.N}} {
		return zero, &ArgCountError{Want: {{.N}}, Got: t.Len()}
	}
{{- range .Slots}}
	v{{.}}, err := as[T{{.}}](t, {{.}})
	if err != nil {
		return zero, err
	}
{{- end}}
	return fn({{.ValueList}}), nil
}
`

// Generator renders the arity facade source for a Config.
type Generator struct {
	cfg *Config
}

// NewGenerator creates a generator for the given configuration.
func NewGenerator(cfg *Config) *Generator {
	return &Generator{cfg: cfg}
}

// Generate renders, formats, and returns the facade source. Output is
// deterministic: the same configuration always yields identical bytes.
func (g *Generator) Generate() ([]byte, error) {
	families := []struct {
		name string
		src  string
	}{
		{FamilyConstructors, constructorSrc},
		{FamilyUnpackers, unpackerSrc},
		{FamilyAppliers, applierSrc},
	}

	var buf strings.Builder
	buf.WriteString("// Code generated by tuplegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", g.cfg.Package)
	fmt.Fprintf(&buf, "import %q\n", typedescImport)

	for _, family := range families {
		if !g.cfg.Emits(family.name) {
			continue
		}
		tmpl, err := template.New(family.name).Parse(family.src)
		if err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", family.name, err)
		}
		for n := 1; n <= g.cfg.MaxArity; n++ {
			buf.WriteString("\n")
			if err := tmpl.Execute(&buf, newArity(n)); err != nil {
				return nil, fmt.Errorf("executing %s template for arity %d: %w", family.name, n, err)
			}
		}
	}

	formatted, err := imports.Process(g.cfg.Output, []byte(buf.String()), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return formatted, nil
}

// arity carries the per-arity expansions the templates splice in.
type arity struct {
	N int
}

func newArity(n int) arity {
	return arity{N: n}
}

// Article returns the indefinite article for the arity's doc comment.
func (a arity) Article() string {
	switch a.N {
	case 8, 11, 18:
		return "an"
	default:
		return "a"
	}
}

// Slots returns the slot positions 0..N-1.
func (a arity) Slots() []int {
	out := make([]int, a.N)
	for i := range out {
		out[i] = i
	}
	return out
}

// TypeList renders "T0, T1".
func (a arity) TypeList() string {
	parts := make([]string, a.N)
	for i := range parts {
		parts[i] = fmt.Sprintf("T%d", i)
	}
	return strings.Join(parts, ", ")
}

// TypeParams renders "T0, T1 any".
func (a arity) TypeParams() string {
	return a.TypeList() + " any"
}

// ValueParams renders "v0 T0, v1 T1".
func (a arity) ValueParams() string {
	parts := make([]string, a.N)
	for i := range parts {
		parts[i] = fmt.Sprintf("v%d T%d", i, i)
	}
	return strings.Join(parts, ", ")
}

// ValueList renders "v0, v1".
func (a arity) ValueList() string {
	parts := make([]string, a.N)
	for i := range parts {
		parts[i] = fmt.Sprintf("v%d", i)
	}
	return strings.Join(parts, ", ")
}

// Results renders "T0, T1, error".
func (a arity) Results() string {
	return a.TypeList() + ", error"
}

// FuncType renders "func(T0, T1) R".
func (a arity) FuncType() string {
	return "func(" + a.TypeList() + ") R"
}
