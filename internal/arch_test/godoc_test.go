package arch_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"
)

// TestExportedSymbolsHaveGoDoc verifies that every exported declaration in
// the internal packages has a doc comment starting with its name. Members of
// a grouped const or var block may instead rely on the block comment or an
// inline comment.
func TestExportedSymbolsHaveGoDoc(t *testing.T) {
	t.Parallel()

	for _, pkg := range internalPackages(t) {
		t.Run(pkg, func(t *testing.T) {
			t.Parallel()
			for _, file := range goFilesIn(t, filepath.Join(internalDirPath(t), pkg)) {
				checkFileGoDoc(t, file)
			}
		})
	}
}

func checkFileGoDoc(t *testing.T, filePath string) {
	t.Helper()

	fset := token.NewFileSet()
	node, err := parser.ParseFile(fset, filePath, nil, parser.ParseComments)
	if err != nil {
		t.Fatalf("parsing %s: %v", filePath, err)
	}
	rel := filepath.Base(filepath.Dir(filePath)) + "/" + filepath.Base(filePath)

	for _, decl := range node.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			checkGenDecl(t, fset, d, rel)
		case *ast.FuncDecl:
			if !d.Name.IsExported() || (d.Recv != nil && !isExportedReceiver(d.Recv)) {
				continue
			}
			if !hasValidGoDoc(docText(d.Doc), d.Name.Name) {
				t.Errorf("%s:%d: exported func %s has no GoDoc comment",
					rel, fset.Position(d.Pos()).Line, d.Name.Name)
			}
		}
	}
}

func checkGenDecl(t *testing.T, fset *token.FileSet, d *ast.GenDecl, rel string) {
	t.Helper()

	grouped := len(d.Specs) > 1
	blockDoc := d.Doc != nil && strings.TrimSpace(d.Doc.Text()) != ""

	for _, spec := range d.Specs {
		switch s := spec.(type) {
		case *ast.TypeSpec:
			if s.Name.IsExported() && !hasValidGoDoc(docText(s.Doc, d.Doc), s.Name.Name) {
				t.Errorf("%s:%d: exported type %s has no GoDoc comment",
					rel, fset.Position(s.Pos()).Line, s.Name.Name)
			}
		case *ast.ValueSpec:
			for _, name := range s.Names {
				if !name.IsExported() {
					continue
				}
				if grouped {
					inline := s.Comment != nil && strings.TrimSpace(s.Comment.Text()) != ""
					if blockDoc || inline || hasValidGoDoc(docText(s.Doc), name.Name) {
						continue
					}
				} else if hasValidGoDoc(docText(s.Doc, d.Doc), name.Name) {
					continue
				}
				t.Errorf("%s:%d: exported %s %s has no GoDoc comment",
					rel, fset.Position(name.Pos()).Line, d.Tok, name.Name)
			}
		}
	}
}

// docText returns the text of the first non-nil comment group.
func docText(groups ...*ast.CommentGroup) string {
	for _, g := range groups {
		if g != nil {
			return g.Text()
		}
	}
	return ""
}

func hasValidGoDoc(doc, symbolName string) bool {
	return strings.HasPrefix(strings.TrimSpace(doc), symbolName)
}

func isExportedReceiver(recv *ast.FieldList) bool {
	if recv == nil || len(recv.List) == 0 {
		return false
	}
	expr := recv.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	ident, ok := expr.(*ast.Ident)
	return ok && ident.IsExported()
}
