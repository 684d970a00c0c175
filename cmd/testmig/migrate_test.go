package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestExpandArgs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.spec.js", "b.spec.js", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := expandArgs([]string{filepath.Join(dir, "*.spec.js")})
	if err != nil {
		t.Fatalf("expandArgs() error = %v", err)
	}
	want := []string{filepath.Join(dir, "a.spec.js"), filepath.Join(dir, "b.spec.js")}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("files = %v, want %v", files, want)
	}
}

func TestExpandArgsDedupes(t *testing.T) {
	files, err := expandArgs([]string{"one.spec.js", "one.spec.js", "two.spec.js"})
	if err != nil {
		t.Fatalf("expandArgs() error = %v", err)
	}
	want := []string{"one.spec.js", "two.spec.js"}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("files = %v, want %v", files, want)
	}
}

func TestOutPath(t *testing.T) {
	tests := []struct {
		file   string
		outDir string
		want   string
	}{
		{"test/specs/login.spec.js", "", "test/specs/login.spec.js"},
		{"test/specs/login.spec.js", "out", filepath.Join("out", "login.spec.js")},
		{"login.spec.js", "migrated", filepath.Join("migrated", "login.spec.js")},
	}
	for _, tt := range tests {
		if got := outPath(tt.file, tt.outDir); got != tt.want {
			t.Errorf("outPath(%q, %q) = %q, want %q", tt.file, tt.outDir, got, tt.want)
		}
	}
}
