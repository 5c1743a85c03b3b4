package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFindSubdir(t *testing.T) {
	tmp := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmp, "s1", "knownclusterblastdirectory"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(tmp, "s2", "KnownClusterBlast"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(tmp, "s3"), 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		parent string
		subdir string
		want   string
		found  bool
	}{
		{"exact", "s1", "knownclusterblastdirectory", "knownclusterblastdirectory", true},
		{"lowercase fallback", "s1", "KnownClusterBlastDirectory", "knownclusterblastdirectory", true},
		{"case fold scan", "s2", "knownclusterblast", "KnownClusterBlast", true},
		{"missing", "s3", "knownclusterblast", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindSubdir(filepath.Join(tmp, tt.parent), tt.subdir)
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if ok && !strings.EqualFold(filepath.Base(got), tt.want) {
				t.Errorf("got %q, want base %q", got, tt.want)
			}
		})
	}
}

func TestStem(t *testing.T) {
	if got := Stem("/data/OG0000001.fa"); got != "OG0000001" {
		t.Errorf("Stem = %q", got)
	}
	if got := Stem("noext"); got != "noext" {
		t.Errorf("Stem = %q", got)
	}
}

func TestGlobFiles(t *testing.T) {
	tmp := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", "c.log"} {
		if err := os.WriteFile(filepath.Join(tmp, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(tmp, "d.txt"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := GlobFiles(tmp, "*.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 || filepath.Base(files[0]) != "a.txt" || filepath.Base(files[1]) != "b.txt" {
		t.Errorf("unexpected files: %v", files)
	}
}

func TestDirExists(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"directory", tmp, true},
		{"regular file", file, false},
		{"missing", filepath.Join(tmp, "nope"), false},
		{"below a file", filepath.Join(file, "sub"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DirExists(tt.path); got != tt.want {
				t.Errorf("DirExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
