package arch_test

import (
	"path/filepath"
	"testing"
)

const (
	maxFilesPerPackage = 20
	maxLinesPerFile    = 400
)

// TestPackageFileCount verifies that no internal package has more than
// maxFilesPerPackage non-test .go files.
func TestPackageFileCount(t *testing.T) {
	t.Parallel()

	dir := internalDirPath(t)
	for _, pkg := range internalPackages(t) {
		t.Run(pkg, func(t *testing.T) {
			t.Parallel()
			if count := len(goFilesIn(t, filepath.Join(dir, pkg))); count > maxFilesPerPackage {
				t.Errorf("package %s has %d .go files (limit: %d); consider splitting", pkg, count, maxFilesPerPackage)
			}
		})
	}
}

// TestFileLineCount verifies that no .go file in internal packages, tests
// included, exceeds maxLinesPerFile lines.
func TestFileLineCount(t *testing.T) {
	t.Parallel()

	root := repoRoot(t)
	dir := internalDirPath(t)
	for _, pkg := range internalPackages(t) {
		for _, filePath := range allGoFilesIn(t, filepath.Join(dir, pkg)) {
			rel, err := filepath.Rel(root, filePath)
			if err != nil {
				t.Fatalf("computing relative path for %s: %v", filePath, err)
			}
			t.Run(rel, func(t *testing.T) {
				t.Parallel()
				if count := lineCount(t, filePath); count > maxLinesPerFile {
					t.Errorf("%s has %d lines (limit: %d); consider decomposing", rel, count, maxLinesPerFile)
				}
			})
		}
	}
}
