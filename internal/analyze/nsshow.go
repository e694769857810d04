// Package analyze extracts a device-table skeleton from captured Brocade
// nsshow output. The resulting CSV keeps the name columns empty for the
// administrator to fill in before feeding it back to alias/generate.
package analyze

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/sanops/zonectl/internal/domain"
)

// PortEntry is one fabric port seen in the name server listing.
type PortEntry struct {
	Fabric    string
	Role      string
	WWPN      string
	NodeSymb  string
	PortSymb  string
	PortIndex string
}

var csvHeader = []string{"Node", "I/f", "Subif", "Fabric", "I/T", "WWPN", "WWNN", "NodeSymb", "PortSymb", "SWport Index"}

// ParseCapture walks the consolidated capture line by line. Blocks start at
// an "N " name-server entry and end at the "Device link speed" line. Capture
// files often carry terminal noise, so leading non-printable characters are
// stripped and embedded whitespace runs collapsed before matching.
func ParseCapture(r io.Reader) ([]PortEntry, error) {
	var entries []PortEntry
	var cur PortEntry
	fabric := ""

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := sanitizeLine(scanner.Text())
		if len(line) < 6 {
			continue
		}

		switch {
		case strings.HasPrefix(line, "Fabric A:"):
			fabric = "A"
		case strings.HasPrefix(line, "Fabric B:"):
			fabric = "B"

		case strings.HasPrefix(line, "N "):
			parts := strings.Split(line, ";")
			if len(parts) >= 3 {
				cur.WWPN = strings.TrimSpace(parts[2])
			}

		case strings.HasPrefix(line, "PortSymb:"):
			cur.PortSymb = quotedValue(line)

		case strings.HasPrefix(line, "NodeSymb:"):
			cur.NodeSymb = quotedValue(line)

		case strings.HasPrefix(line, "Device type:"):
			value := strings.TrimSpace(strings.TrimPrefix(line, "Device type:"))
			switch {
			case strings.Contains(value, "Initiator"):
				cur.Role = "I"
			case strings.Contains(value, "Target"):
				cur.Role = "T"
			}

		case strings.HasPrefix(line, "Port Index:"):
			cur.PortIndex = strings.TrimSpace(strings.TrimPrefix(line, "Port Index:"))

		case strings.HasPrefix(line, "Device link speed"):
			cur.Fabric = fabric
			entries = append(entries, cur)
			cur = PortEntry{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTableReadFailed, err)
	}

	return entries, nil
}

func sanitizeLine(line string) string {
	for len(line) > 0 && (line[0] < ' ' || line[0] > 'z') {
		line = line[1:]
	}
	return strings.Join(strings.Fields(line), " ")
}

func quotedValue(line string) string {
	parts := strings.Split(line, "\"")
	if len(parts) >= 2 {
		return parts[1]
	}
	return ""
}

// WriteCSV renders the entries in the device-table column layout.
func WriteCSV(w io.Writer, entries []PortEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range entries {
		row := []string{"", "", "", e.Fabric, e.Role, e.WWPN, "", e.NodeSymb, e.PortSymb, e.PortIndex}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
