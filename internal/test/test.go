// Package test holds helpers shared by the package tests.
package test

import (
	"path/filepath"
	"runtime"
	"testing"

	"golang.org/x/tools/txtar"
)

// GoldenArchive is the txtar file holding every golden suite document.
const GoldenArchive = "golden.txtar"

func FixtureDir(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime.Caller failed")
	}
	return filepath.Join(filepath.Dir(filename), "..", "..", "testdata")
}

// ReadGolden returns the archive member called name.
func ReadGolden(t *testing.T, name string) string {
	t.Helper()
	for _, f := range readArchive(t).Files {
		if f.Name == name {
			return string(f.Data)
		}
	}
	t.Fatalf("golden file %s not found in %s", name, GoldenArchive)
	return ""
}

// GoldenNames lists the archive members in archive order.
func GoldenNames(t *testing.T) []string {
	t.Helper()
	archive := readArchive(t)
	names := make([]string, 0, len(archive.Files))
	for _, f := range archive.Files {
		names = append(names, f.Name)
	}
	return names
}

func readArchive(t *testing.T) *txtar.Archive {
	t.Helper()
	path := filepath.Join(FixtureDir(t), GoldenArchive)
	archive, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("failed to read golden archive %s: %v", path, err)
	}
	return archive
}
