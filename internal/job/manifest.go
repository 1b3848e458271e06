package job

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dormstern/svcreport/internal/report"
)

// manifestFile represents the YAML batch description.
type manifestFile struct {
	Jobs []manifestJob `yaml:"jobs"`
}

type manifestJob struct {
	Name  string `yaml:"name"`
	Kind  string `yaml:"kind"`
	Input string `yaml:"input"`
}

// LoadManifest reads a YAML manifest of jobs and validates it: at least one
// job, an input for every job, known kinds, unique names. A job without a
// name takes its kind id as the name.
func LoadManifest(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var mf manifestFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if len(mf.Jobs) == 0 {
		return nil, fmt.Errorf("manifest %s: no jobs defined", path)
	}

	jobs := make([]Job, 0, len(mf.Jobs))
	names := make(map[string]bool)
	for i, mj := range mf.Jobs {
		kind, err := report.ParseKind(mj.Kind)
		if err != nil {
			return nil, fmt.Errorf("manifest %s: job %d: %w", path, i+1, err)
		}
		if mj.Input == "" {
			return nil, fmt.Errorf("manifest %s: job %d: no input file", path, i+1)
		}
		name := mj.Name
		if name == "" {
			name = string(kind)
		}
		if names[name] {
			return nil, fmt.Errorf("manifest %s: duplicate job name %q", path, name)
		}
		names[name] = true

		jobs = append(jobs, Job{Name: name, Kind: kind, Input: mj.Input})
	}
	return jobs, nil
}
