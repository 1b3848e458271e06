package job

import (
	"github.com/dormstern/svcreport/internal/report"
)

// Job describes one report to produce: an input file and how to format it.
type Job struct {
	Name  string
	Kind  report.Kind
	Input string
}

// Result summarizes what one job wrote.
type Result struct {
	Job      string
	Kind     report.Kind
	Services int
	Values   int
	Bytes    int
}
