// Package rename standardises FASTA file names and headers for a
// phylogenomics run and strips symbols that are not amino acid codes.
package rename

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/yumyai/phylokit/logger"
	"github.com/yumyai/phylokit/pkg/fasta"
)

const (
	MappingFile = "name_mapping.tsv"
	CleanupFile = "cleanup_summary.tsv"
	SpeciesFile = "species_list.fa"
)

// Amino acid codes plus ambiguity symbols, either case.
const validAA = "XOUBZACDEFGHIKLMNPQRSTVWYxoubzacdefghiklmnpqrstvwy"

// Removed counts dropped characters, keeping first-seen order.
type Removed struct {
	order  []rune
	counts map[rune]int
}

func (r *Removed) add(c rune) {
	if r.counts == nil {
		r.counts = make(map[rune]int)
	}
	if r.counts[c] == 0 {
		r.order = append(r.order, c)
	}
	r.counts[c]++
}

func (r *Removed) Total() int {
	total := 0
	for _, n := range r.counts {
		total += n
	}
	return total
}

func (r *Removed) Chars() []rune { return r.order }

func (r *Removed) Count(c rune) int { return r.counts[c] }

// String renders "*:2, 1:1".
func (r *Removed) String() string {
	parts := make([]string, 0, len(r.order))
	for _, c := range r.order {
		parts = append(parts, fmt.Sprintf("%c:%d", c, r.counts[c]))
	}
	return strings.Join(parts, ", ")
}

// CleanSequence drops every character that is not a valid amino acid symbol.
func CleanSequence(seq string, removed *Removed) string {
	var b strings.Builder
	b.Grow(len(seq))
	for _, c := range seq {
		if strings.ContainsRune(validAA, c) {
			b.WriteRune(c)
		} else {
			removed.add(c)
		}
	}
	return b.String()
}

type Options struct {
	InputDir   string
	FastaDir   string
	SummaryDir string
	Prefix     string
}

// FileResult records what happened to one input file.
type FileResult struct {
	OldName string
	NewName string
	Species string
	Records int
	Removed *Removed
}

// Run renames every file of opts.InputDir (sorted) to <prefix><NN>.fasta,
// rewrites headers as <prefix><NN>_<n>| and writes the summary tables.
func Run(opts Options) ([]FileResult, error) {
	for _, dir := range []string{opts.FastaDir, opts.SummaryDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	entries, err := os.ReadDir(opts.InputDir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	results := make([]FileResult, 0, len(names))
	for i, name := range names {
		logger.Info("Processing file",
			zap.Int("index", i+1), zap.Int("total", len(names)), zap.String("file", name))

		res, err := renameFile(opts, i+1, name)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}

	if err := writeSummaries(opts.SummaryDir, results); err != nil {
		return results, err
	}
	return results, nil
}

func renameFile(opts Options, index int, name string) (FileResult, error) {
	species := fmt.Sprintf("%s%02d", opts.Prefix, index)
	res := FileResult{
		OldName: name,
		NewName: species + ".fasta",
		Species: species,
		Removed: &Removed{},
	}

	path := filepath.Join(opts.InputDir, name)
	records, err := fasta.ReadFile(path)
	if err != nil {
		return res, err
	}
	// The FASTA reader drops blanks inside sequence lines, so removals are
	// counted on the raw lines instead.
	if err := countRemoved(path, res.Removed); err != nil {
		return res, err
	}

	var discard Removed
	for n := range records {
		records[n].Header = fmt.Sprintf("%s_%d|", species, n+1)
		records[n].Seq = CleanSequence(records[n].Seq, &discard)
	}
	res.Records = len(records)

	out := filepath.Join(opts.FastaDir, res.NewName)
	if err := fasta.WriteFile(out, records, 60); err != nil {
		return res, fmt.Errorf("failed to write %s: %w", out, err)
	}
	return res, nil
}

// countRemoved runs every trimmed sequence line of path through
// CleanSequence, keeping only the removal counts.
func countRemoved(path string, removed *Removed) error {
	fh, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fh.Close()

	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<26)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, ">") {
			continue
		}
		CleanSequence(line, removed)
	}
	return sc.Err()
}

func writeSummaries(dir string, results []FileResult) error {
	err := writeLines(filepath.Join(dir, MappingFile), func(w *bufio.Writer) {
		w.WriteString("new_name\told_name\n")
		for _, r := range results {
			fmt.Fprintf(w, "%s\t%s\n", r.NewName, r.OldName)
		}
	})
	if err != nil {
		return err
	}

	err = writeLines(filepath.Join(dir, CleanupFile), func(w *bufio.Writer) {
		w.WriteString("file\tcharacter\tcount\n")
		for _, r := range results {
			if r.Removed.Total() == 0 {
				fmt.Fprintf(w, "%s\t-\t0\n", r.OldName)
				continue
			}
			for _, c := range r.Removed.Chars() {
				fmt.Fprintf(w, "%s\t%s\t%d\n", r.OldName, strconv.QuoteRune(c), r.Removed.Count(c))
			}
		}
	})
	if err != nil {
		return err
	}

	return writeLines(filepath.Join(dir, SpeciesFile), func(w *bufio.Writer) {
		for _, r := range results {
			fmt.Fprintf(w, ">%s\n", r.Species)
		}
	})
}

func writeLines(path string, fill func(w *bufio.Writer)) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(fh)
	fill(w)
	if err := w.Flush(); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}
