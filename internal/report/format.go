package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dormstern/svcreport/internal/model"
	"github.com/dormstern/svcreport/internal/writers"
)

// Options carries run-level settings the value mappers need.
type Options struct {
	// ZipkinURL is the base URL of the Zipkin UI, used to build trace links.
	ZipkinURL string
}

// kindSpec defines one report kind: the header template (one %s, the service
// name), the per-value line mapper, and a short behavior note for listings.
// MemcacheRequest is the aggregate exception: it sums its values and writes
// a single summary line instead of header-plus-values, so it carries no
// header or mapper.
type kindSpec struct {
	headerFormat string
	value        func(opts Options, v string) string
	aggregate    bool
	behavior     string
}

const memcacheSummaryFormat = "%s made %d redundant memcache requests"

var kindSpecs = map[Kind]kindSpec{
	MemcacheRequest: {
		aggregate: true,
		behavior:  "sums all values, single summary line",
	},
	Timeouts: {
		headerFormat: "%s timed out in calls to the following services:",
		value:        passthrough,
		behavior:     "one line per value, verbatim",
	},
	Retries: {
		headerFormat: "%s retried in calls to the following services:",
		value:        passthrough,
		behavior:     "one line per value, verbatim",
	},
	WorstRuntimes: {
		headerFormat: "Service %s took the longest for these spans:",
		value:        passthrough,
		behavior:     "one line per value, verbatim",
	},
	WorstRuntimesPerTrace: {
		headerFormat: "Service %s took the longest for these traces:",
		value:        traceLink,
		behavior:     "one hyperlink per trace id",
	},
	ExpensiveEndpoints: {
		headerFormat: "The most expensive calls for %s were:",
		value:        passthrough,
		behavior:     "one line per value, verbatim",
	},
}

func passthrough(_ Options, v string) string {
	return v
}

// traceLink renders a trace id as a hyperlink into the Zipkin trace view.
func traceLink(opts Options, v string) string {
	base := strings.TrimSuffix(opts.ZipkinURL, "/")
	return fmt.Sprintf(`<a href="%s/traces/%s">%s</a>`, base, v, v)
}

// HeaderPattern returns the kind's header template with {service} standing in
// for the service name, for listings and help text.
func HeaderPattern(k Kind) string {
	spec, ok := kindSpecs[k]
	if !ok {
		return ""
	}
	if spec.aggregate {
		return strings.Replace(strings.Replace(memcacheSummaryFormat, "%s", "{service}", 1), "%d", "{sum}", 1)
	}
	return strings.Replace(spec.headerFormat, "%s", "{service}", 1)
}

// ValueBehavior returns a short description of how the kind renders values.
func ValueBehavior(k Kind) string {
	return kindSpecs[k].behavior
}

// Write renders one record through the handle: the kind's header line, then
// one mapped line per value in input order. The handle is flushed once the
// record is complete. It returns the total bytes written.
func Write(k Kind, rec model.Record, h *writers.Handle, opts Options) (int, error) {
	spec, ok := kindSpecs[k]
	if !ok {
		return 0, fmt.Errorf("unknown report kind %q", k)
	}
	if spec.aggregate {
		n, err := writeAggregate(rec, h)
		if err != nil {
			return n, err
		}
		return n, h.Flush()
	}

	total, err := h.WriteLine(fmt.Sprintf(spec.headerFormat, rec.Service))
	if err != nil {
		return total, err
	}
	for _, v := range rec.Values {
		n, err := h.WriteLine(spec.value(opts, v))
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, h.Flush()
}

// writeAggregate sums the record's values as integers and emits the one-line
// memcache summary. A non-integer value is fatal for the record; there is no
// default and no skip.
func writeAggregate(rec model.Record, h *writers.Handle) (int, error) {
	sum := 0
	for _, v := range rec.Values {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("memcache request count for %s: %w", rec.Service, err)
		}
		sum += n
	}
	return h.WriteLine(fmt.Sprintf(memcacheSummaryFormat, rec.Service, sum))
}
