package job

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dormstern/svcreport/internal/report"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reports.yml")
	os.WriteFile(path, []byte(content), 0644)
	return path
}

func TestLoadManifest_Valid(t *testing.T) {
	path := writeManifest(t, `jobs:
  - name: timeouts-daily
    kind: timeouts
    input: data/timeouts/part-00000
  - name: memcache-daily
    kind: memcache-request
    input: data/memcache/part-00000
`)

	jobs, err := LoadManifest(path)
	require.NoError(t, err, "failed to load manifest")
	require.Len(t, jobs, 2)

	require.Equal(t, "timeouts-daily", jobs[0].Name)
	require.Equal(t, report.Timeouts, jobs[0].Kind)
	require.Equal(t, "data/timeouts/part-00000", jobs[0].Input)
	require.Equal(t, report.MemcacheRequest, jobs[1].Kind)
}

func TestLoadManifest_UpstreamKindSpelling(t *testing.T) {
	path := writeManifest(t, `jobs:
  - kind: WorstRuntimesPerTrace
    input: data/part-00000
`)

	jobs, err := LoadManifest(path)
	require.NoError(t, err, "failed to load manifest")
	require.Equal(t, report.WorstRuntimesPerTrace, jobs[0].Kind)
}

func TestLoadManifest_DefaultsNameToKind(t *testing.T) {
	path := writeManifest(t, `jobs:
  - kind: retries
    input: data/part-00000
`)

	jobs, err := LoadManifest(path)
	require.NoError(t, err, "failed to load manifest")
	require.Equal(t, "retries", jobs[0].Name)
}

func TestLoadManifest_UnknownKind(t *testing.T) {
	path := writeManifest(t, `jobs:
  - kind: frobnications
    input: data/part-00000
`)

	_, err := LoadManifest(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown report kind")
}

func TestLoadManifest_MissingInput(t *testing.T) {
	path := writeManifest(t, `jobs:
  - name: timeouts-daily
    kind: timeouts
`)

	_, err := LoadManifest(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no input file")
}

func TestLoadManifest_DuplicateNames(t *testing.T) {
	path := writeManifest(t, `jobs:
  - name: daily
    kind: timeouts
    input: a
  - name: daily
    kind: retries
    input: b
`)

	_, err := LoadManifest(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate job name")
}

func TestLoadManifest_NoJobs(t *testing.T) {
	path := writeManifest(t, `jobs: []
`)

	_, err := LoadManifest(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no jobs defined")
}

func TestLoadManifest_BadYAML(t *testing.T) {
	path := writeManifest(t, "jobs: [unclosed\n")

	_, err := LoadManifest(path)
	require.Error(t, err)
}

func TestLoadManifest_MissingFile(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
}
