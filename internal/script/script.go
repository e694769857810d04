// Package script renders Brocade FOS zoning commands. Output is an external
// contract: the switch session consumes these lines verbatim, so formatting
// (including the aligned padding after zoneAdd/cfgAdd) is fixed.
package script

import (
	"fmt"
	"strings"

	"github.com/sanops/zonectl/internal/domain/valueobject"
)

func AliasCreate(name string, wwn valueobject.WWN) string {
	return fmt.Sprintf("aliCreate \"%s\", \"%s\"", name, wwn)
}

func ZoneCreate(zone, member string) string {
	return fmt.Sprintf("zoneCreate \"%s\", \"%s\"", zone, member)
}

func ZoneAdd(zone, member string) string {
	return fmt.Sprintf("zoneAdd    \"%s\", \"%s\"", zone, member)
}

func CfgCreate(cfg, zone string) string {
	return fmt.Sprintf("cfgCreate \"%s\", \"%s\"", cfg, zone)
}

func CfgAdd(cfg, zone string) string {
	return fmt.Sprintf("cfgAdd    \"%s\", \"%s\"", cfg, zone)
}

func CfgEnable(cfg string) string {
	return fmt.Sprintf("cfgEnable \"%s\"", cfg)
}

const (
	CfgSave    = "cfgSave"
	CfgClear   = "cfgClear"
	CfgDisable = "cfgDisable"
)

// Script accumulates command lines in memory. Nothing touches the filesystem
// until the whole run has validated cleanly.
type Script struct {
	lines []string
}

func New(header string) *Script {
	s := &Script{}
	if header != "" {
		s.Comment(header)
	}
	return s
}

func (s *Script) Add(lines ...string) {
	s.lines = append(s.lines, lines...)
}

func (s *Script) Comment(text string) {
	s.lines = append(s.lines, "# "+text)
}

func (s *Script) Len() int {
	return len(s.lines)
}

// Render joins the lines with a trailing newline.
func (s *Script) Render() string {
	if len(s.lines) == 0 {
		return ""
	}
	return strings.Join(s.lines, "\n") + "\n"
}
