package gen

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	oneofDir   = "../../pkg/oneof"
	typesetDir = "../../pkg/oneof/typeset"
)

// moduleImporter serves packages of this module from source and defers
// everything else to the default importer.
type moduleImporter struct {
	std  types.Importer
	pkgs map[string]*types.Package
}

func (m *moduleImporter) Import(path string) (*types.Package, error) {
	if p, ok := m.pkgs[path]; ok {
		return p, nil
	}
	return m.std.Import(path)
}

func parseDir(t *testing.T, fset *token.FileSet, dir string) []*ast.File {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var files []*ast.File
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") || name == "union_gen.go" {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, 0)
		require.NoError(t, err)
		files = append(files, f)
	}
	return files
}

// typeCheck checks src as the generated file of package pkgPath. When dir is
// set, the other non-test files of dir join the package in place of the
// checked-in union_gen.go.
func typeCheck(t *testing.T, src []byte, pkgPath, dir string) error {
	t.Helper()

	fset := token.NewFileSet()
	imp := &moduleImporter{std: importer.Default(), pkgs: map[string]*types.Package{}}
	conf := types.Config{Importer: imp}

	ts, err := conf.Check(DefaultTypesetImport, fset, parseDir(t, fset, typesetDir), nil)
	require.NoError(t, err)
	imp.pkgs[DefaultTypesetImport] = ts

	generated, err := parser.ParseFile(fset, "union_gen.go", src, 0)
	if err != nil {
		return err
	}

	var files []*ast.File
	if dir != "" {
		files = parseDir(t, fset, dir)
	}
	files = append(files, generated)

	_, err = conf.Check(pkgPath, fset, files, nil)
	return err
}
