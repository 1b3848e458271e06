package job

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/chainguard-dev/clog"

	"github.com/dormstern/svcreport/internal/reader"
	"github.com/dormstern/svcreport/internal/report"
	"github.com/dormstern/svcreport/internal/writers"
)

// Runner processes jobs one at a time, in order, appending report sections
// to one file per service under OutputDir through the shared registry.
type Runner struct {
	Registry            *writers.Registry
	OutputDir           string
	ZipkinURL           string
	CombineSimilarNames bool
}

// Run executes the jobs sequentially and returns one Result per job. The
// first failure aborts the run; results for completed jobs are still
// returned.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	var results []Result
	for _, j := range jobs {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := r.runOne(ctx, j)
		if err != nil {
			return results, fmt.Errorf("job %s: %w", j.Name, err)
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) runOne(ctx context.Context, j Job) (Result, error) {
	log := clog.FromContext(ctx).With("job", j.Name, "kind", string(j.Kind))
	log.Infof("reading %s", j.Input)

	if r.CombineSimilarNames {
		set, err := reader.ServiceNames(j.Input)
		if err != nil {
			return Result{}, err
		}
		log.Infof("combining similar names across %d services", set.Len())
	}

	records, err := reader.Groups(j.Input, reader.Options{
		CombineSimilarNames: r.CombineSimilarNames,
	})
	if err != nil {
		return Result{}, err
	}

	res := Result{Job: j.Name, Kind: j.Kind}
	opts := report.Options{ZipkinURL: r.ZipkinURL}
	for _, rec := range records {
		h, err := r.Registry.Get(filepath.Join(r.OutputDir, rec.Service))
		if err != nil {
			return res, err
		}
		n, err := report.Write(j.Kind, rec, h, opts)
		if err != nil {
			return res, err
		}
		res.Services++
		res.Values += len(rec.Values)
		res.Bytes += n
	}

	log.With("services", res.Services, "values", res.Values).
		Infof("wrote %d bytes", res.Bytes)
	return res, nil
}
