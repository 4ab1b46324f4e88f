// Package scan discovers struct types implementing the fmt.Stringer
// contract in Go source directories. The gen and list commands use it to
// decide which types a generated verification test should cover.
package scan

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Type is one discovered struct type with a String() string method.
type Type struct {
	// Name is the type name as declared.
	Name string
	// PointerReceiver reports whether String is declared on *T rather than T.
	PointerReceiver bool
}

// Exported reports whether the type is exported.
func (t Type) Exported() bool {
	return token.IsExported(t.Name)
}

// Package is the scan result for one directory.
type Package struct {
	// Dir is the scanned directory.
	Dir string
	// Name is the package name, empty when the directory holds no Go files.
	Name string
	// Types lists the discovered Stringer struct types, sorted by name.
	Types []Type
}

// Dirs scans several directories concurrently, at most maxParallel at a
// time, and returns results in input order.
func Dirs(dirs []string, maxParallel int) ([]Package, error) {
	if maxParallel < 1 {
		maxParallel = 1
	}

	results := make([]Package, len(dirs))
	var g errgroup.Group
	g.SetLimit(maxParallel)

	for i, dir := range dirs {
		i, dir := i, dir
		g.Go(func() error {
			pkg, err := Dir(dir)
			if err != nil {
				return err
			}
			results[i] = pkg
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Dir scans one directory. Test files and test packages are skipped: the
// generator must not pick up types declared in the scaffolds it emitted.
func Dir(dir string) (Package, error) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, func(fi fs.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go")
	}, 0)
	if err != nil {
		return Package{}, fmt.Errorf("scanning %s: %w", dir, err)
	}

	for name, pkg := range pkgs {
		if strings.HasSuffix(name, "_test") {
			continue
		}
		return Package{Dir: dir, Name: name, Types: stringerTypes(pkg)}, nil
	}
	return Package{Dir: dir}, nil
}

// stringerTypes intersects the package's struct type declarations with its
// String() string method receivers.
func stringerTypes(pkg *ast.Package) []Type {
	structs := make(map[string]struct{})
	stringers := make(map[string]bool) // name -> pointer receiver

	for _, file := range pkg.Files {
		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.GenDecl:
				if d.Tok != token.TYPE {
					continue
				}
				for _, spec := range d.Specs {
					ts, ok := spec.(*ast.TypeSpec)
					if !ok {
						continue
					}
					if _, ok := ts.Type.(*ast.StructType); ok {
						structs[ts.Name.Name] = struct{}{}
					}
				}
			case *ast.FuncDecl:
				if name, ptr, ok := stringMethodReceiver(d); ok {
					stringers[name] = ptr
				}
			}
		}
	}

	var types []Type
	for name, ptr := range stringers {
		if _, ok := structs[name]; !ok {
			continue
		}
		types = append(types, Type{Name: name, PointerReceiver: ptr})
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Name < types[j].Name })
	return types
}

// stringMethodReceiver returns the receiver type name of a String() string
// method declaration, or ok=false for any other function.
func stringMethodReceiver(d *ast.FuncDecl) (name string, pointer bool, ok bool) {
	if d.Name.Name != "String" || d.Recv == nil || len(d.Recv.List) != 1 {
		return "", false, false
	}
	ft := d.Type
	if ft.Params != nil && len(ft.Params.List) != 0 {
		return "", false, false
	}
	if ft.Results == nil || len(ft.Results.List) != 1 {
		return "", false, false
	}
	if ident, isIdent := ft.Results.List[0].Type.(*ast.Ident); !isIdent || ident.Name != "string" {
		return "", false, false
	}

	switch rt := d.Recv.List[0].Type.(type) {
	case *ast.Ident:
		return rt.Name, false, true
	case *ast.StarExpr:
		if ident, isIdent := rt.X.(*ast.Ident); isIdent {
			return ident.Name, true, true
		}
	}
	return "", false, false
}
