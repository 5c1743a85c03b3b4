package discover

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func touch(t *testing.T, root string, rel ...string) {
	t.Helper()
	for _, r := range rel {
		path := filepath.Join(root, r)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestFiles(t *testing.T) {
	root := t.TempDir()
	touch(t, root,
		"SRR2/logs/salmon_quant.log",
		"SRR1/logs/salmon_quant.log",
		"SRR1/aux_info/meta_info.json",
		"old_runs/SRR9/logs/salmon_quant.log",
		"SRR3/logs/salmon_quant.log.bak",
	)

	tests := []struct {
		name    string
		exclude []string
		want    []string
	}{
		{
			name: "all",
			want: []string{
				"SRR1/logs/salmon_quant.log",
				"SRR2/logs/salmon_quant.log",
				"old_runs/SRR9/logs/salmon_quant.log",
			},
		},
		{
			name:    "excluded directory",
			exclude: []string{"old_runs/"},
			want: []string{
				"SRR1/logs/salmon_quant.log",
				"SRR2/logs/salmon_quant.log",
			},
		},
		{
			name:    "excluded sample glob",
			exclude: []string{"SRR2", "old_*"},
			want:    []string{"SRR1/logs/salmon_quant.log"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := Files(root, "salmon_quant.log", tt.exclude)
			if err != nil {
				t.Fatal(err)
			}
			var rel []string
			for _, f := range files {
				r, _ := filepath.Rel(root, f)
				rel = append(rel, filepath.ToSlash(r))
			}
			if strings.Join(rel, "\n") != strings.Join(tt.want, "\n") {
				t.Errorf("got %v, want %v", rel, tt.want)
			}
		})
	}
}

func TestFilesErrors(t *testing.T) {
	if _, err := Files(t.TempDir(), "[", nil); err == nil {
		t.Error("expected a bad pattern error")
	}
	if _, err := Files(filepath.Join(t.TempDir(), "missing"), "*", nil); err == nil {
		t.Error("expected an error for a missing root")
	}
}
