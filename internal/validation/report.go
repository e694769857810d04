// Package validation collects validation issues for a whole run so the
// administrator can fix a batch of problems in one pass. Nothing here is
// fail-fast: callers accumulate every issue and decide at the end.
package validation

import (
	"fmt"
	"strings"
)

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Issue is one validation finding tied to its source location.
type Issue struct {
	Severity Severity
	Source   string
	Row      int
	Field    string
	Message  string
}

func (i *Issue) Error() string {
	var b strings.Builder
	b.WriteString(i.Severity.String())
	if i.Source != "" {
		b.WriteString(": ")
		b.WriteString(i.Source)
		if i.Row > 0 {
			fmt.Fprintf(&b, ":%d", i.Row)
		}
	}
	if i.Field != "" {
		b.WriteString(" [")
		b.WriteString(i.Field)
		b.WriteString("]")
	}
	b.WriteString(": ")
	b.WriteString(i.Message)
	return b.String()
}

// Report aggregates all issues found while validating one run's input.
type Report struct {
	Source string
	Issues []*Issue
}

func NewReport(source string) *Report {
	return &Report{Source: source}
}

func (r *Report) add(sev Severity, row int, field, format string, args ...any) {
	r.Issues = append(r.Issues, &Issue{
		Severity: sev,
		Source:   r.Source,
		Row:      row,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (r *Report) Errorf(row int, field, format string, args ...any) {
	r.add(SeverityError, row, field, format, args...)
}

func (r *Report) Warnf(row int, field, format string, args ...any) {
	r.add(SeverityWarning, row, field, format, args...)
}

// Merge appends another report's issues, keeping their source attribution.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Issues = append(r.Issues, other.Issues...)
}

func (r *Report) Errors() []*Issue {
	return r.bySeverity(SeverityError)
}

func (r *Report) Warnings() []*Issue {
	return r.bySeverity(SeverityWarning)
}

func (r *Report) bySeverity(sev Severity) []*Issue {
	var out []*Issue
	for _, i := range r.Issues {
		if i.Severity == sev {
			out = append(out, i)
		}
	}
	return out
}

func (r *Report) HasErrors() bool {
	return len(r.Errors()) > 0
}

// Err returns the report as a single error, or nil when no errors were
// recorded. Warnings alone never fail a run.
func (r *Report) Err() error {
	errs := r.Errors()
	if len(errs) == 0 {
		return nil
	}
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.Error()
	}
	return fmt.Errorf("%d validation error(s):\n%s", len(errs), strings.Join(lines, "\n"))
}
