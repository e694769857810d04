package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sanops/zonectl/internal/validation"
)

var titleCaser = cases.Title(language.English)

// renderReport formats the aggregated issues, errors first, one line per
// issue so the administrator can fix the whole batch in one pass.
func renderReport(report *validation.Report) string {
	var b strings.Builder

	if errs := report.Errors(); len(errs) > 0 {
		heading := fmt.Sprintf("%s (%d):", titleCaser.String("errors"), len(errs))
		b.WriteString(ErrorStyle.Bold(true).Render(heading))
		b.WriteString("\n")
		for _, issue := range errs {
			b.WriteString(ErrorStyle.Render("  ✗ " + issueLocation(issue) + issue.Message))
			b.WriteString("\n")
		}
	}

	if warns := report.Warnings(); len(warns) > 0 {
		heading := fmt.Sprintf("%s (%d):", titleCaser.String("warnings"), len(warns))
		b.WriteString(WarningStyle.Bold(true).Render(heading))
		b.WriteString("\n")
		for _, issue := range warns {
			b.WriteString(WarningStyle.Render("  ! " + issueLocation(issue) + issue.Message))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func issueLocation(issue *validation.Issue) string {
	var b strings.Builder
	if issue.Source != "" {
		b.WriteString(issue.Source)
		if issue.Row > 0 {
			fmt.Fprintf(&b, ":%d", issue.Row)
		}
		b.WriteString(": ")
	}
	return b.String()
}

// finishReport prints the report and exits non-zero when it holds errors.
// Warnings are shown but never fail the run.
func finishReport(report *validation.Report) {
	if len(report.Issues) > 0 {
		fmt.Fprint(os.Stderr, renderReport(report))
	}
	if report.HasErrors() {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render(fmt.Sprintf("%d error(s) found - no output produced", len(report.Errors()))))
		os.Exit(1)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render(fmt.Sprintf(format, args...)))
	os.Exit(1)
}
