package validation

import (
	"strings"
	"testing"
)

func TestReportAggregation(t *testing.T) {
	report := NewReport("devices.csv")
	report.Errorf(2, "wwpn", "malformed WWN %q", "xyz")
	report.Errorf(5, "fabric", "invalid fabric %q", "C")
	report.Warnf(7, "fabric", "possible cable issue")

	if got := len(report.Errors()); got != 2 {
		t.Errorf("Errors() = %d, want 2", got)
	}
	if got := len(report.Warnings()); got != 1 {
		t.Errorf("Warnings() = %d, want 1", got)
	}
	if !report.HasErrors() {
		t.Error("HasErrors() = false")
	}

	err := report.Err()
	if err == nil {
		t.Fatal("Err() = nil")
	}
	msg := err.Error()
	if !strings.Contains(msg, "2 validation error(s)") {
		t.Errorf("missing count in %q", msg)
	}
	if !strings.Contains(msg, "devices.csv:2") || !strings.Contains(msg, "devices.csv:5") {
		t.Errorf("missing row locations in %q", msg)
	}
	if strings.Contains(msg, "cable issue") {
		t.Errorf("warnings must not appear in Err(): %q", msg)
	}
}

func TestReportWarningsOnly(t *testing.T) {
	report := NewReport("configs.yaml")
	report.Warnf(0, "active", "2 configs marked active")

	if report.HasErrors() {
		t.Error("HasErrors() = true for warnings only")
	}
	if err := report.Err(); err != nil {
		t.Errorf("Err() = %v, want nil for warnings only", err)
	}
}

func TestReportMerge(t *testing.T) {
	a := NewReport("devices.csv")
	a.Errorf(2, "wwpn", "bad")
	b := NewReport("zones.yaml")
	b.Errorf(3, "member", "unknown")

	combined := NewReport("")
	combined.Merge(a)
	combined.Merge(b)
	combined.Merge(nil)

	if got := len(combined.Errors()); got != 2 {
		t.Fatalf("merged errors = %d, want 2", got)
	}
	msg := combined.Err().Error()
	if !strings.Contains(msg, "devices.csv:2") || !strings.Contains(msg, "zones.yaml:3") {
		t.Errorf("merged sources lost: %q", msg)
	}
}

func TestIssueError(t *testing.T) {
	issue := &Issue{Severity: SeverityError, Source: "zones.yaml", Row: 4, Field: "member", Message: "unknown alias"}
	want := "error: zones.yaml:4 [member]: unknown alias"
	if got := issue.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
