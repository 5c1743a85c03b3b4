// Package busco turns BUSCO short_summary files into long-format rows.
package busco

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/yumyai/phylokit/logger"
	"github.com/yumyai/phylokit/pkg/discover"
)

// Unknown is printed for header fields a summary never stated.
const Unknown = "unknown"

var Header = []string{"Sample", "Database", "Version", "Mode", "Measure", "Value"}

// SummaryGlob matches BUSCO summary file names.
const SummaryGlob = "short_summary.*.txt"

var measures = []struct {
	name string
	re   *regexp.Regexp
}{
	{"Complete", regexp.MustCompile(`^\s*(\d+)\s+Complete BUSCOs`)},
	{"Complete_Single_Copy", regexp.MustCompile(`^\s*(\d+)\s+Complete and single-copy BUSCOs`)},
	{"Complete_Duplicated", regexp.MustCompile(`^\s*(\d+)\s+Complete and duplicated BUSCOs`)},
	{"Fragmented", regexp.MustCompile(`^\s*(\d+)\s+Fragmented BUSCOs`)},
	{"Missing", regexp.MustCompile(`^\s*(\d+)\s+Missing BUSCOs`)},
	{"Total", regexp.MustCompile(`^\s*(\d+)\s+Total BUSCO groups searched`)},
}

type Measure struct {
	Name  string
	Value int
}

// Summary is one parsed short_summary file. Database, Version and Mode are
// nil when the file does not state them.
type Summary struct {
	Sample   string
	Source   string
	Database *string
	Version  *string
	Mode     *string
	Measures []Measure
}

// Rows renders the summary in long format. Missing header fields are
// defaulted to Unknown here and nowhere else.
func (s Summary) Rows() [][]string {
	db, version, mode := orUnknown(s.Database), orUnknown(s.Version), orUnknown(s.Mode)
	rows := make([][]string, 0, len(s.Measures))
	for _, m := range s.Measures {
		rows = append(rows, []string{s.Sample, db, version, mode, m.Name, strconv.Itoa(m.Value)})
	}
	return rows
}

func orUnknown(s *string) string {
	if s == nil {
		return Unknown
	}
	return *s
}

func ptr(s string) *string { return &s }

// runMode maps the BUSCO run mode to the kind of input it was run on.
func runMode(line string) *string {
	switch {
	case strings.Contains(line, "proteins"):
		return ptr("protein")
	case strings.Contains(line, "genome"):
		return ptr("nucleotide")
	case strings.Contains(line, "transcriptome"):
		return ptr("transcriptome")
	}
	return nil
}

// Parse reads one short_summary file body.
func Parse(r io.Reader, sample string) (Summary, error) {
	s := Summary{Sample: sample}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()

		if rest, ok := strings.CutPrefix(line, "# BUSCO version is:"); ok {
			s.Version = ptr("v" + strings.TrimSpace(rest))
		}
		if rest, ok := strings.CutPrefix(line, "# The lineage dataset is:"); ok {
			if f := strings.Fields(rest); len(f) > 0 {
				s.Database = ptr(f[0])
			}
		}
		if strings.Contains(line, "BUSCO was run in mode:") {
			if mode := runMode(line); mode != nil {
				s.Mode = mode
			}
		}

		for _, m := range measures {
			if match := m.re.FindStringSubmatch(line); match != nil {
				n, err := strconv.Atoi(match[1])
				if err != nil {
					return s, fmt.Errorf("bad %s count %q: %w", m.name, match[1], err)
				}
				s.Measures = append(s.Measures, Measure{Name: m.name, Value: n})
				break
			}
		}
	}
	return s, sc.Err()
}

// ParseFile reads one short_summary file of sample.
func ParseFile(path, sample string) (Summary, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Summary{}, err
	}
	defer fh.Close()

	s, err := Parse(fh, sample)
	if err != nil {
		return s, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	s.Source = path
	return s, nil
}

// Collect parses every summary below each sample directory of indir.
// Exclude patterns are relative to indir. Samples are visited in name order;
// unreadable files are logged and skipped.
func Collect(indir string, exclude []string) ([]Summary, error) {
	files, err := discover.Files(indir, SummaryGlob, exclude)
	if err != nil {
		return nil, err
	}

	var summaries []Summary
	for _, f := range files {
		rel, err := filepath.Rel(indir, f)
		if err != nil {
			continue
		}
		sample, _, nested := strings.Cut(filepath.ToSlash(rel), "/")
		if !nested {
			logger.Debug("Ignoring summary outside a sample directory", zap.String("path", f))
			continue
		}

		s, err := ParseFile(f, sample)
		if err != nil {
			logger.Warn("Skipping BUSCO summary", zap.String("path", f), zap.Error(err))
			continue
		}
		summaries = append(summaries, s)
	}
	sort.SliceStable(summaries, func(i, j int) bool { return summaries[i].Sample < summaries[j].Sample })
	return summaries, nil
}
