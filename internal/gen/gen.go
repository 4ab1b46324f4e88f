// Package gen renders verification test scaffolds for packages with
// Stringer types. The emitted file lives in the scanned package itself so
// unexported types stay reachable without knowing the package's import path.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"github.com/verifykit/stringver/internal/scan"
)

// scaffold is the emitted test file. Options are pre-rendered chained call
// lines so the template stays free of configuration knowledge.
var scaffold = template.Must(template.New("scaffold").Parse(`// Generated by stringver gen. Adjust the configuration below as the String
// formats of these types evolve.
package {{.Package}}

import (
	"testing"

	"github.com/verifykit/stringver"
)

func TestStringerContracts(t *testing.T) {
	stringver.ForClasses(
{{- range .Types}}
		{{.}}{},
{{- end}}
	).
{{- range .Options}}
		{{.}}.
{{- end}}
		Verify(t)
}
`))

// Params feeds the scaffold template.
type Params struct {
	// Package is the target package name.
	Package string
	// Types are the composite literals' type names, in render order.
	Types []string
	// Options are chained configuration calls without the leading receiver
	// or trailing dot, e.g. `WithNullValue("<nil>")`.
	Options []string
}

// Render produces a gofmt-formatted scaffold for the given parameters.
func Render(p Params) ([]byte, error) {
	if p.Package == "" {
		return nil, fmt.Errorf("no package name")
	}
	if len(p.Types) == 0 {
		return nil, fmt.Errorf("no types to verify in package %s", p.Package)
	}

	var buf bytes.Buffer
	if err := scaffold.Execute(&buf, p); err != nil {
		return nil, fmt.Errorf("rendering scaffold: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting scaffold: %w", err)
	}
	return src, nil
}

// ForPackage renders the scaffold for a scanned package, covering its
// exported Stringer struct types.
func ForPackage(pkg scan.Package, options []string) ([]byte, error) {
	var types []string
	for _, t := range pkg.Types {
		if t.Exported() {
			types = append(types, t.Name)
		}
	}
	return Render(Params{Package: pkg.Name, Types: types, Options: options})
}
