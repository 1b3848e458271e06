package reader

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/dormstern/svcreport/internal/model"
)

// Options controls how an input file is grouped.
type Options struct {
	// CombineSimilarNames groups hierarchical service names (a/b) together
	// with their namespaced form (a.b) under the normalized name.
	CombineSimilarNames bool
}

// ServiceNames pre-scans an input file and collects the normalized service
// name from every non-blank line. Lines without a value are tolerated here;
// only the leading token matters.
func ServiceNames(path string) (*model.ServiceSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	set := model.NewServiceSet()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		set.Add(model.NormalizeServiceName(fields[0]))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return set, nil
}

// Groups reads an input file of "service value" lines and accumulates the
// values per service across the whole file. Groups come back in the order
// each service first appears, with values in input order. The value is the
// remainder of the line after the service token, so values may contain
// spaces.
func Groups(path string, opts Options) ([]model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	var records []model.Record
	index := make(map[string]int)

	lineNo := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cut := strings.IndexFunc(line, unicode.IsSpace)
		if cut < 0 {
			return nil, fmt.Errorf("parsing %s: line %d: no value after service %q", path, lineNo, line)
		}
		service := line[:cut]
		value := strings.TrimSpace(line[cut:])

		if opts.CombineSimilarNames {
			service = model.NormalizeServiceName(service)
		}

		i, ok := index[service]
		if !ok {
			i = len(records)
			index[service] = i
			records = append(records, model.Record{Service: service})
		}
		records[i].Values = append(records[i].Values, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}

	return records, nil
}
