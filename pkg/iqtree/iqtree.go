// Package iqtree picks the best-fit substitution model out of IQ-TREE logs.
package iqtree

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/yumyai/phylokit/internal/util"
	"github.com/yumyai/phylokit/logger"
	"github.com/yumyai/phylokit/pkg/tsv"
)

const DefaultPrefix = "SCO"

var Criteria = []string{"AIC", "BIC", "AICc"}

var (
	ErrBadCriterion = errors.New("criterion must be one of AIC, BIC, AICc")
	ErrNoLog        = errors.New("no log file found")
	ErrNoModel      = errors.New("no model found")
	ErrNoModels     = errors.New("no models extracted")
)

// Selection is the chosen model of one gene tree directory.
type Selection struct {
	Dir   string
	Model string
}

// ModelRE matches the best-fit line for criterion. The word boundary keeps
// AIC from matching AICc lines.
func ModelRE(criterion string) (*regexp.Regexp, error) {
	valid := false
	for _, c := range Criteria {
		if c == criterion {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("%w: %q", ErrBadCriterion, criterion)
	}
	return regexp.MustCompile(`Best-fit model:\s+(\S+)\s+chosen according to\s+` + regexp.QuoteMeta(criterion) + `\b`), nil
}

// ReadModel returns the first model in the log chosen by re.
func ReadModel(path string, re *regexp.Regexp) (string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer fh.Close()

	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		if m := re.FindStringSubmatch(sc.Text()); m != nil {
			return m[1], nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", ErrNoModel
}

// Select reads one model per prefixed directory of root, in name order.
func Select(root, prefix, criterion string) ([]Selection, error) {
	re, err := ModelRE(criterion)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var out []Selection
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		dir := filepath.Join(root, e.Name())

		logs, err := util.GlobFiles(dir, "*.log")
		if err != nil || len(logs) == 0 {
			logger.Warn("No log file found", zap.String("dir", dir))
			continue
		}
		model, err := ReadModel(logs[0], re)
		if err != nil {
			logger.Warn("No model found",
				zap.String("criterion", criterion), zap.String("log", logs[0]), zap.Error(err))
			continue
		}
		out = append(out, Selection{Dir: e.Name(), Model: model})
	}
	return out, nil
}

// WriteFile writes the selections as SCO<TAB><criterion>_Model. Nothing is
// written when there are no selections.
func WriteFile(path, criterion string, sel []Selection) error {
	if len(sel) == 0 {
		return ErrNoModels
	}
	rows := make([][]string, 0, len(sel))
	for _, s := range sel {
		rows = append(rows, []string{s.Dir, s.Model})
	}
	return tsv.WriteFile(path, []string{"SCO", criterion + "_Model"}, rows)
}
