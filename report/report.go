// Package report collects and renders the results of fixture runs.
package report

import (
	"strings"
	"time"
)

// Report is the result of running one or more programs.
type Report struct {
	Metadata Metadata `json:"metadata"`
	Results  []Result `json:"results"`
}

// Metadata describes a run.
type Metadata struct {
	Programs []string  `json:"programs"`
	Started  time.Time `json:"started"`
}

// Result is the output of a single program.
type Result struct {
	Program  string        `json:"program"`
	Output   string        `json:"output"`
	Lines    int           `json:"lines"`
	Duration time.Duration `json:"duration"`
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

// Add appends the output of a program.
func (r *Report) Add(program, output string, duration time.Duration) {
	r.Metadata.Programs = append(r.Metadata.Programs, program)
	r.Results = append(r.Results, Result{
		Program:  program,
		Output:   output,
		Lines:    CountLines(output),
		Duration: duration,
	})
}

// Result returns the result for program.
func (r *Report) Result(program string) (Result, bool) {
	for _, res := range r.Results {
		if res.Program == program {
			return res, true
		}
	}
	return Result{}, false
}

// CountLines counts output lines, including an unterminated last line.
func CountLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}
