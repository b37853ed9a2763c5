package entities

import "fmt"

// DiagnosticKind classifies a non-fatal finding of the diff.
type DiagnosticKind int

const (
	// DiagnosticGitSentinel marks a git dependency compared through the sentinel version.
	DiagnosticGitSentinel DiagnosticKind = iota
	// DiagnosticInvalidInterval marks a requirement whose comparators accept no release.
	DiagnosticInvalidInterval
)

// Diagnostic is an informational finding. It never aborts a diff.
type Diagnostic struct {
	Kind    DiagnosticKind
	Table   TableKind
	Key     string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] %s: %s", d.Table, d.Key, d.Message)
}

// Diagnostics collects the findings of one diff invocation. The zero value is ready to use.
type Diagnostics struct {
	items []Diagnostic
}

// Add records a finding.
func (d *Diagnostics) Add(diagnostic Diagnostic) {
	d.items = append(d.items, diagnostic)
}

// Items returns the findings in the order they were recorded.
func (d *Diagnostics) Items() []Diagnostic {
	out := make([]Diagnostic, len(d.items))
	copy(out, d.items)
	return out
}

// Len is the number of findings.
func (d *Diagnostics) Len() int {
	return len(d.items)
}
