// Package ortholog builds supermatrix inputs from per-orthogroup FASTA files:
// concatenating sequences per species and padding species absent from an
// orthogroup.
package ortholog

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/yumyai/phylokit/logger"
	"github.com/yumyai/phylokit/pkg/fasta"
)

// Concatenation holds one growing sequence per expected species.
type Concatenation struct {
	order []string
	seqs  map[string]*strings.Builder
}

func NewConcatenation(species []string) *Concatenation {
	c := &Concatenation{seqs: make(map[string]*strings.Builder, len(species))}
	for _, sp := range species {
		if _, ok := c.seqs[sp]; ok {
			continue
		}
		c.order = append(c.order, sp)
		c.seqs[sp] = &strings.Builder{}
	}
	return c
}

// Add appends each record's sequence to its species. Records of species that
// are not expected are ignored.
func (c *Concatenation) Add(records []fasta.Record) {
	for _, rec := range records {
		b, ok := c.seqs[rec.Species()]
		if !ok {
			logger.Debug("Ignoring unexpected species", zap.String("header", rec.Header))
			continue
		}
		b.WriteString(rec.Seq)
	}
}

// AddFile reads an ortholog FASTA file and appends its sequences.
func (c *Concatenation) AddFile(path string) error {
	records, err := fasta.ReadFile(path)
	if err != nil {
		return err
	}
	c.Add(records)
	return nil
}

// Species returns the expected species in list order, duplicates removed.
func (c *Concatenation) Species() []string {
	return append([]string(nil), c.order...)
}

// Records returns one record per species, sorted by species name.
func (c *Concatenation) Records() []fasta.Record {
	names := make([]string, len(c.order))
	copy(names, c.order)
	sort.Strings(names)

	records := make([]fasta.Record, 0, len(names))
	for _, sp := range names {
		records = append(records, fasta.Record{Header: sp, Seq: c.seqs[sp].String()})
	}
	return records
}

// LengthReport summarises whether all concatenated sequences share a length.
type LengthReport struct {
	Consistent  bool
	Lengths     map[string]int
	Majority    int
	Problematic []string // sorted
}

// CheckLengths compares concatenated lengths. The majority length breaks ties
// by the first species (in expected order) carrying it.
func (c *Concatenation) CheckLengths() LengthReport {
	report := LengthReport{Lengths: make(map[string]int, len(c.order))}

	counts := make(map[int]int)
	var firstSeen []int
	for _, sp := range c.order {
		n := c.seqs[sp].Len()
		report.Lengths[sp] = n
		if counts[n] == 0 {
			firstSeen = append(firstSeen, n)
		}
		counts[n]++
	}

	best := -1
	for _, n := range firstSeen {
		if best < 0 || counts[n] > counts[best] {
			best = n
		}
	}
	if best < 0 {
		best = 0
	}
	report.Majority = best
	report.Consistent = len(counts) <= 1

	for sp, n := range report.Lengths {
		if n != best {
			report.Problematic = append(report.Problematic, sp)
		}
	}
	sort.Strings(report.Problematic)
	return report
}
