package ortholog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/yumyai/phylokit/internal/util"
	"github.com/yumyai/phylokit/logger"
	"github.com/yumyai/phylokit/pkg/fasta"
)

type PadOptions struct {
	Species       []string
	InputDir      string
	InputExt      string
	OutputDir     string
	OutputExt     string
	LineLength    int
	MissingReport string // optional TSV of missing species per orthogroup
}

// PadResult describes one written orthogroup.
type PadResult struct {
	Orthogroup string
	Output     string
	Missing    []string
	Length     int
}

// Pad completes an orthogroup: existing records are kept in input order and
// every expected species that is absent gets a gap-only record as long as
// the longest existing sequence.
func Pad(records []fasta.Record, species []string) (padded []fasta.Record, missing []string, length int) {
	// Duplicate headers keep their first position and the last sequence.
	index := make(map[string]int, len(records))
	present := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if i, ok := index[rec.Header]; ok {
			padded[i].Seq = rec.Seq
		} else {
			index[rec.Header] = len(padded)
			padded = append(padded, rec)
		}
		present[rec.Species()] = struct{}{}
	}

	for _, rec := range padded {
		if len(rec.Seq) > length {
			length = len(rec.Seq)
		}
	}

	gap := strings.Repeat("-", length)
	for _, sp := range species {
		if _, ok := present[sp]; ok {
			continue
		}
		missing = append(missing, sp)
		padded = append(padded, fasta.Record{Header: sp + "_00|", Seq: gap})
	}
	return padded, missing, length
}

// PadDir pads every orthogroup file in opts.InputDir and writes the results
// to opts.OutputDir.
func PadDir(opts PadOptions) ([]PadResult, error) {
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	files, err := util.GlobFiles(opts.InputDir, "*"+opts.InputExt)
	if err != nil {
		return nil, err
	}

	var report *bufio.Writer
	if opts.MissingReport != "" {
		fh, err := os.Create(opts.MissingReport)
		if err != nil {
			return nil, fmt.Errorf("failed to create missing report: %w", err)
		}
		defer fh.Close()
		report = bufio.NewWriter(fh)
		defer report.Flush()
		report.WriteString("orthogroup\tmissing_species\n")
	}

	var results []PadResult
	for _, path := range files {
		name := filepath.Base(path)
		logger.Info("Processing orthogroup", zap.String("file", name))

		records, err := fasta.ReadFile(path)
		if err != nil {
			return results, err
		}

		padded, missing, length := Pad(records, opts.Species)
		for _, sp := range missing {
			logger.Warn("Missing species", zap.String("orthogroup", name), zap.String("species", sp))
		}
		if report != nil && len(missing) > 0 {
			fmt.Fprintf(report, "%s\t%s\n", util.Stem(path), strings.Join(missing, ","))
		}

		out := filepath.Join(opts.OutputDir, util.Stem(path)+opts.OutputExt)
		if err := fasta.WriteFile(out, padded, opts.LineLength); err != nil {
			return results, fmt.Errorf("failed to write %s: %w", out, err)
		}

		results = append(results, PadResult{
			Orthogroup: util.Stem(path),
			Output:     out,
			Missing:    missing,
			Length:     length,
		})
	}

	if report != nil {
		logger.Info("Missing species report saved", zap.String("path", opts.MissingReport))
	}
	return results, nil
}

// Validate checks that every *ext file in dir holds exactly expected records
// of equal length. It returns one message per problem found.
func Validate(dir, ext string, expected int) ([]string, error) {
	files, err := util.GlobFiles(dir, "*"+ext)
	if err != nil {
		return nil, err
	}

	var issues []string
	for _, path := range files {
		records, err := fasta.ReadFile(path)
		if err != nil {
			return issues, err
		}

		name := filepath.Base(path)
		if len(records) != expected {
			issues = append(issues, fmt.Sprintf("%s: has %d, expected %d", name, len(records), expected))
		}

		lengths := make(map[int]struct{})
		for _, rec := range records {
			lengths[len(rec.Seq)] = struct{}{}
		}
		if len(lengths) != 1 {
			sorted := make([]int, 0, len(lengths))
			for n := range lengths {
				sorted = append(sorted, n)
			}
			sort.Ints(sorted)
			issues = append(issues, fmt.Sprintf("%s: inconsistent sequence lengths %v", name, sorted))
		}
	}
	return issues, nil
}
