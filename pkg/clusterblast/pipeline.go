package clusterblast

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/yumyai/phylokit/internal/util"
	"github.com/yumyai/phylokit/logger"
	"github.com/yumyai/phylokit/pkg/jobs"
	"github.com/yumyai/phylokit/pkg/tsv"
)

var (
	ErrNoReportDir = errors.New("report subdirectory not found")
	ErrNoReports   = errors.New("no .txt reports found")
)

const (
	ResultsSuffix   = ".results.tsv"
	UnmatchedSuffix = ".unmatched_rows.csv" // tab separated like the rest
	SampleSuffix    = ".merged_results.tsv"
)

// Sink receives the merged rows of every written report, e.g. a database.
type Sink interface {
	WriteReport(ctx context.Context, sample, report string, rows []MergedRow) error
}

type Options struct {
	InputDir string
	Pattern  string // glob for sample directory names
	OutDir   string
	Subdir   string
	Workers  int
	Sink     Sink // optional
}

// Summary is reported once every sample has been processed.
type Summary struct {
	Samples        int
	SamplesSkipped int
	SamplesWritten int
	Files          map[jobs.Status]int
}

type Pipeline struct {
	opts Options
	jobs *jobs.Manager
}

func NewPipeline(opts Options) *Pipeline {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Pipeline{opts: opts, jobs: jobs.NewManager()}
}

// Jobs exposes the per-file job states.
func (p *Pipeline) Jobs() *jobs.Manager { return p.jobs }

// SampleDirs returns the directories under InputDir matching Pattern, sorted.
func (p *Pipeline) SampleDirs() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(p.opts.InputDir, p.opts.Pattern))
	if err != nil {
		return nil, fmt.Errorf("bad sample pattern %q: %w", p.opts.Pattern, err)
	}
	dirs := matches[:0]
	for _, m := range matches {
		if util.DirExists(m) {
			dirs = append(dirs, m)
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

// Run processes every matching sample. Per-sample and per-file problems are
// logged and counted; only an unusable output directory is returned as error.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	if err := os.MkdirAll(p.opts.OutDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("failed to create output dir: %w", err)
	}

	dirs, err := p.SampleDirs()
	if err != nil {
		return Summary{}, err
	}
	logger.Info("Found sample dirs",
		zap.Int("count", len(dirs)), zap.String("pattern", p.opts.Pattern), zap.String("input_dir", p.opts.InputDir))

	summary := Summary{Samples: len(dirs)}
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		rows, err := p.ProcessSample(ctx, dir)
		switch {
		case err != nil:
			summary.SamplesSkipped++
			logger.Warn("Skipping sample", zap.String("sample", filepath.Base(dir)), zap.Error(err))
		case rows == 0:
			summary.SamplesSkipped++
		default:
			summary.SamplesWritten++
		}
	}

	summary.Files = p.jobs.Summary()
	return summary, nil
}

type fileResult struct {
	merged []MergedRow
	ok     bool
}

// ProcessSample parses all reports of one sample and writes the per-file and
// the per-sample tables. It returns the number of rows in the sample table.
func (p *Pipeline) ProcessSample(ctx context.Context, sampleDir string) (int, error) {
	sample := filepath.Base(filepath.Clean(sampleDir))

	reportDir, ok := util.FindSubdir(sampleDir, p.opts.Subdir)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNoReportDir, p.opts.Subdir)
	}

	files, err := util.GlobFiles(reportDir, "*.txt")
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		return 0, fmt.Errorf("%w in %s", ErrNoReports, reportDir)
	}

	outDir := filepath.Join(p.opts.OutDir, sample)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create sample output dir: %w", err)
	}

	results := p.processFiles(ctx, sample, outDir, files)

	// All workers are done; assemble in file order.
	var combined []MergedRow
	for _, r := range results {
		if r.ok {
			combined = append(combined, r.merged...)
		}
	}
	if len(combined) == 0 {
		logger.Warn("No parsed data to merge for sample", zap.String("sample", sample))
		return 0, nil
	}

	path := filepath.Join(p.opts.OutDir, sample+SampleSuffix)
	if err := writeRows(path, combined); err != nil {
		return 0, err
	}
	logger.Info("Sample merged file written", zap.String("sample", sample), zap.String("path", path))
	return len(combined), nil
}

// processFiles runs one worker pool over the sample's reports. Results are
// stored by index so their order matches files.
func (p *Pipeline) processFiles(ctx context.Context, sample, outDir string, files []string) []fileResult {
	results := make([]fileResult, len(files))

	workers := p.opts.Workers
	if workers > len(files) {
		workers = len(files)
	}

	work := make(chan int, len(files))
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				rf := NewReportFile(files[idx], sample)
				results[idx] = p.processFile(ctx, rf, outDir)
			}
		}()
	}

	for i := range files {
		work <- i
	}
	close(work)
	wg.Wait()

	return results
}

func (p *Pipeline) processFile(ctx context.Context, rf ReportFile, outDir string) fileResult {
	name := filepath.Base(rf.Path)
	job := p.jobs.NewJob(rf.Sample, name)
	p.jobs.SetRunning(job.ID)
	logger.Debug("Processing report", zap.String("sample", rf.Sample), zap.String("file", name))

	rep, err := ParseFile(rf)
	if err != nil {
		p.jobs.Fail(job.ID, err)
		logger.Error("Failed to read report", zap.String("file", name), zap.Error(err))
		return fileResult{}
	}

	if len(rep.Hits) == 0 {
		p.jobs.Skip(job.ID, "no blast hits parsed")
		logger.Info("No blast hits parsed, skipping writing for this file", zap.String("file", name))
		return fileResult{}
	}

	merged, unmatched := Merge(rep.Hits, rep.Query)

	if len(unmatched) > 0 {
		path := filepath.Join(outDir, name+UnmatchedSuffix)
		if err := writeRows(path, unmatched); err != nil {
			p.jobs.Fail(job.ID, err)
			logger.Error("Failed to write unmatched rows", zap.String("file", name), zap.Error(err))
			return fileResult{}
		}
		logger.Info("Hits had no matching query-cluster row",
			zap.String("file", name), zap.Int("unmatched", len(unmatched)), zap.String("path", path))
	} else {
		logger.Debug("All hits matched query-cluster genes", zap.String("file", name))
	}

	path := filepath.Join(outDir, name+ResultsSuffix)
	if err := writeRows(path, merged); err != nil {
		p.jobs.Fail(job.ID, err)
		logger.Error("Failed to write results", zap.String("file", name), zap.Error(err))
		return fileResult{}
	}
	logger.Info("Wrote parsed and merged results", zap.String("file", name), zap.String("path", path))

	if p.opts.Sink != nil {
		if err := p.opts.Sink.WriteReport(ctx, rf.Sample, name, merged); err != nil {
			p.jobs.Fail(job.ID, err)
			logger.Error("Failed to export rows", zap.String("file", name), zap.Error(err))
			return fileResult{merged: merged, ok: true}
		}
	}

	p.jobs.Complete(job.ID, len(merged), len(unmatched))
	return fileResult{merged: merged, ok: true}
}

func writeRows(path string, rows []MergedRow) error {
	values := make([][]string, len(rows))
	for i, r := range rows {
		values[i] = r.Values()
	}
	return tsv.WriteFile(path, Columns, values)
}
