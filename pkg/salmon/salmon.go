// Package salmon collects mapping rates from salmon quant logs.
package salmon

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"regexp"

	"go.uber.org/zap"

	"github.com/yumyai/phylokit/logger"
	"github.com/yumyai/phylokit/pkg/discover"
	"github.com/yumyai/phylokit/pkg/tsv"
)

const LogName = "salmon_quant.log"

var Header = []string{"Sample", "Mapping_Percentage"}

var (
	ErrNoMappingRate = errors.New("no mapping rate found")
	ErrNoSample      = errors.New("log is not below <sample>/logs")
)

var mappingRateRE = regexp.MustCompile(`Mapping rate\s*=\s*([\d.]+)%`)

// Rate is the mapping rate of one sample, kept as printed by salmon.
type Rate struct {
	Sample  string
	Percent string
}

// SampleOf returns the directory name holding the logs directory of path.
func SampleOf(path string) (string, error) {
	logs := filepath.Dir(path)
	if filepath.Base(logs) != "logs" {
		return "", ErrNoSample
	}
	sample := filepath.Base(filepath.Dir(logs))
	if sample == "." || sample == string(filepath.Separator) || sample == "" {
		return "", ErrNoSample
	}
	return sample, nil
}

// ReadRate returns the first mapping rate printed in the log at path.
func ReadRate(path string) (string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer fh.Close()

	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		if m := mappingRateRE.FindStringSubmatch(sc.Text()); m != nil {
			return m[1], nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", ErrNoMappingRate
}

// Collect walks baseDir for quant logs and reads one rate per log. Logs that
// cannot be attributed to a sample or carry no rate are logged and skipped.
func Collect(baseDir string, exclude []string) ([]Rate, error) {
	files, err := discover.Files(baseDir, LogName, exclude)
	if err != nil {
		return nil, err
	}

	var rates []Rate
	for _, f := range files {
		sample, err := SampleOf(f)
		if err != nil {
			logger.Warn("Could not parse sample name", zap.String("path", f))
			continue
		}
		pct, err := ReadRate(f)
		if err != nil {
			logger.Warn("Skipping salmon log", zap.String("path", f), zap.Error(err))
			continue
		}
		rates = append(rates, Rate{Sample: sample, Percent: pct})
	}
	return rates, nil
}

// WriteFile writes the rates table; the header is written even when empty.
func WriteFile(path string, rates []Rate) error {
	rows := make([][]string, 0, len(rates))
	for _, r := range rates {
		rows = append(rows, []string{r.Sample, r.Percent + "%"})
	}
	return tsv.WriteFile(path, Header, rows)
}
