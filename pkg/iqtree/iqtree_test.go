package iqtree

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleLog = `IQ-TREE multicore version 2.2.0
Akaike Information Criterion:           LG+G4
Best-fit model: LG+I+G4 chosen according to AICc
Best-fit model: JTT+G4 chosen according to AIC
Best-fit model: WAG+F+G4 chosen according to BIC
`

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestReadModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "SCO1.log")
	writeFile(t, path, sampleLog)

	tests := []struct {
		criterion string
		want      string
	}{
		{"AIC", "JTT+G4"},
		{"AICc", "LG+I+G4"},
		{"BIC", "WAG+F+G4"},
	}
	for _, tt := range tests {
		t.Run(tt.criterion, func(t *testing.T) {
			re, err := ModelRE(tt.criterion)
			if err != nil {
				t.Fatal(err)
			}
			got, err := ReadModel(path, re)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("model = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestModelREBadCriterion(t *testing.T) {
	if _, err := ModelRE("LRT"); !errors.Is(err, ErrBadCriterion) {
		t.Errorf("err = %v, want ErrBadCriterion", err)
	}
}

func TestSelect(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "SCO2", "SCO2.log"), sampleLog)
	writeFile(t, filepath.Join(root, "SCO1", "tree.log"), "Best-fit model: LG chosen according to BIC\n")
	writeFile(t, filepath.Join(root, "SCO3", "tree.treefile"), "(a,b);\n")
	writeFile(t, filepath.Join(root, "OG1", "OG1.log"), sampleLog)

	sel, err := Select(root, DefaultPrefix, "BIC")
	if err != nil {
		t.Fatal(err)
	}
	want := []Selection{{"SCO1", "LG"}, {"SCO2", "WAG+F+G4"}}
	if len(sel) != len(want) {
		t.Fatalf("got %+v, want %+v", sel, want)
	}
	for i := range want {
		if sel[i] != want[i] {
			t.Errorf("selection %d = %+v, want %+v", i, sel[i], want[i])
		}
	}

	out := filepath.Join(t.TempDir(), "models.tsv")
	if err := WriteFile(out, "BIC", sel); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), "SCO\tBIC_Model\nSCO1\tLG\nSCO2\tWAG+F+G4\n"; got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestWriteFileEmpty(t *testing.T) {
	out := filepath.Join(t.TempDir(), "models.tsv")
	if err := WriteFile(out, "AIC", nil); !errors.Is(err, ErrNoModels) {
		t.Fatalf("err = %v, want ErrNoModels", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("no file should be written")
	}
}
