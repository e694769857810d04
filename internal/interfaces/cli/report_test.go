package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sanops/zonectl/internal/validation"
)

func TestRenderReport(t *testing.T) {
	report := validation.NewReport("devices.csv")
	report.Errorf(2, "wwpn", "malformed WWN")
	report.Warnf(5, "fabric", "possible cable issue")

	out := renderReport(report)

	if !strings.Contains(out, "Errors (1):") {
		t.Errorf("missing error heading in %q", out)
	}
	if !strings.Contains(out, "Warnings (1):") {
		t.Errorf("missing warning heading in %q", out)
	}
	if !strings.Contains(out, "devices.csv:2") {
		t.Errorf("missing error location in %q", out)
	}
	if !strings.Contains(out, "malformed WWN") || !strings.Contains(out, "possible cable issue") {
		t.Errorf("missing messages in %q", out)
	}
}

func TestMenuModelNavigation(t *testing.T) {
	m := newMenuModel()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})

	final, ok := next.(menuModel)
	if !ok {
		t.Fatal("unexpected model type")
	}
	if !final.chosen || final.choice != actionAnalyze {
		t.Errorf("choice = %v chosen = %v, want analyze chosen", final.choice, final.chosen)
	}
}

func TestMenuModelView(t *testing.T) {
	view := newMenuModel().View()
	for _, label := range []string{"Validate", "Generate", "Analyze", "Quit"} {
		if !strings.Contains(view, label) {
			t.Errorf("menu view missing %q", label)
		}
	}
}
