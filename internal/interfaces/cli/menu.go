package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// The bare invocation drops into a small menu so an administrator can run
// the common actions against the default file names in the working
// directory without remembering flags.

type menuAction int

const (
	actionValidate menuAction = iota
	actionGenerate
	actionAnalyze
	actionQuit
)

type menuItem struct {
	action menuAction
	label  string
	detail string
}

var menuItems = []menuItem{
	{actionValidate, "Validate", "Check devices.csv / zones.yaml / configs.yaml"},
	{actionGenerate, "Generate", "Derive per-fabric alias/zone/cfg scripts from devices.csv"},
	{actionAnalyze, "Analyze", "Extract a device table from nsshow.txt"},
	{actionQuit, "Quit", ""},
}

type menuModel struct {
	cursor int
	choice menuAction
	chosen bool
}

func newMenuModel() menuModel {
	return menuModel{choice: actionQuit}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case "enter":
		m.choice = menuItems[m.cursor].action
		m.chosen = true
		return m, tea.Quit
	}

	return m, nil
}

func (m menuModel) View() string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("  zonectl") + "\n\n")

	for i, item := range menuItems {
		line := item.label
		if item.detail != "" {
			line = fmt.Sprintf("%-10s %s", item.label, item.detail)
		}
		if i == m.cursor {
			sb.WriteString(SelectedStyle.Render("  > "+line) + "\n")
		} else {
			sb.WriteString("    " + line + "\n")
		}
	}

	sb.WriteString("\n" + HelpStyle.Render("  ↑/↓ Select  Enter Confirm  q Quit") + "\n")

	return sb.String()
}

func runMenu(ctx *Context) {
	program := tea.NewProgram(newMenuModel())
	finalModel, err := program.Run()
	if err != nil {
		fatal("Error running menu: %v", err)
	}

	m, ok := finalModel.(menuModel)
	if !ok || !m.chosen {
		return
	}

	switch m.choice {
	case actionValidate:
		devices, zones, configs := existingDefault("devices.csv"), existingDefault("zones.yaml"), existingDefault("configs.yaml")
		runValidateAll(ctx, devices, zones, configs, false, false)
	case actionGenerate:
		runGenerate(ctx, "devices.csv", ".", "", false, false, false, false, false)
	case actionAnalyze:
		runAnalyze("nsshow.txt", "fabanal.csv")
	}
}

func existingDefault(name string) string {
	if _, err := os.Stat(name); err != nil {
		return ""
	}
	return name
}
