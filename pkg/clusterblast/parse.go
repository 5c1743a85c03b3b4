// Package clusterblast parses antiSMASH ClusterBlast text reports into long
// tables of BLAST hits annotated with the query cluster genes.
package clusterblast

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/yumyai/phylokit/logger"
)

// Region tags look like "_c10" in the report file name.
var regionRE = regexp.MustCompile(`^.*?(_c\d+|_C\d+|_c\D*\d+)`)

// RegionOf derives the region tag from a report file name. Names without a
// recognisable tag are used whole.
func RegionOf(filename string) string {
	region := filename
	if m := regionRE.FindStringSubmatch(filename); m != nil {
		region = m[1]
	}
	return strings.TrimLeft(region, "_")
}

// NewReportFile describes the report at path for the given sample.
func NewReportFile(path, sample string) ReportFile {
	return ReportFile{Path: path, Sample: sample, Region: RegionOf(filepath.Base(path))}
}

// SplitLines splits text on \n, \r\n or \r. A trailing line break does not
// produce an empty last line.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Parse reads the query gene table and every cluster block of a report.
// Blocks without a hits table contribute nothing.
func Parse(lines []string, region string) Report {
	rep := Report{Query: ParseQueryTable(lines)}

	for _, span := range Segment(lines) {
		block := lines[span.Start:span.End]
		meta := ExtractMetadata(block)

		fields, found := ParseHitsTable(block)
		if !found {
			logger.Debug("Cluster block without hits table",
				zap.Int("line", span.Start+1), zap.String("region", region))
			continue
		}
		for _, f := range fields {
			rep.Hits = append(rep.Hits, Hit{ClusterMeta: meta, HitFields: f, Region: region})
		}
	}
	return rep
}

// ParseFile reads and parses one report. Invalid UTF-8 is dropped.
func ParseFile(rf ReportFile) (Report, error) {
	raw, err := os.ReadFile(rf.Path)
	if err != nil {
		return Report{}, &FileError{Path: rf.Path, Err: err}
	}
	text := strings.ToValidUTF8(string(raw), "")
	return Parse(SplitLines(text), rf.Region), nil
}

// FileError wraps a failure tied to one report file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("report %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
