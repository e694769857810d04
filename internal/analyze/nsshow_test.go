package analyze

import (
	"strings"
	"testing"
)

const sampleCapture = `Fabric A:
 N    051200;      3;50:06:0e:80:16:50:5c:00;50:06:0e:80:16:50:5c:01; na
    PortSymb: [41] "HITACHI  OPEN-V          5015C00"
    NodeSymb: [31] "HITACHI  DF600F          000000"
    Device type: Physical Target
    Port Index: 18
    Device link speed: 8G
Fabric B:
 N    061300;      3;10:00:00:05:1e:12:34:56;20:00:00:05:1e:12:34:56; na
    Device type: Physical Initiator
    Port Index: 3
    Device link speed: 16G
`

func TestParseCapture(t *testing.T) {
	entries, err := ParseCapture(strings.NewReader(sampleCapture))
	if err != nil {
		t.Fatalf("ParseCapture() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}

	first := entries[0]
	if first.Fabric != "A" {
		t.Errorf("Fabric = %q, want A", first.Fabric)
	}
	if first.Role != "T" {
		t.Errorf("Role = %q, want T", first.Role)
	}
	if first.WWPN != "50:06:0e:80:16:50:5c:00" {
		t.Errorf("WWPN = %q", first.WWPN)
	}
	if first.PortSymb != "HITACHI  OPEN-V          5015C00" {
		t.Errorf("PortSymb = %q", first.PortSymb)
	}
	if first.NodeSymb != "HITACHI  DF600F          000000" {
		t.Errorf("NodeSymb = %q", first.NodeSymb)
	}
	if first.PortIndex != "18" {
		t.Errorf("PortIndex = %q", first.PortIndex)
	}

	second := entries[1]
	if second.Fabric != "B" || second.Role != "I" {
		t.Errorf("second entry fabric/role = %q/%q, want B/I", second.Fabric, second.Role)
	}
	if second.WWPN != "10:00:00:05:1e:12:34:56" {
		t.Errorf("second WWPN = %q", second.WWPN)
	}
}

func TestParseCaptureIgnoresNoise(t *testing.T) {
	noisy := "\x7f\x01 N 051200; 3;50:06:0e:80:16:50:5c:00;50:06:0e:80:16:50:5c:01\n" +
		"x\n" +
		"    Device type: Physical Target\n" +
		"    Device link speed: 8G\n"

	entries, err := ParseCapture(strings.NewReader(noisy))
	if err != nil {
		t.Fatalf("ParseCapture() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].WWPN != "50:06:0e:80:16:50:5c:00" {
		t.Errorf("WWPN = %q", entries[0].WWPN)
	}
}

func TestWriteCSV(t *testing.T) {
	entries := []PortEntry{
		{Fabric: "A", Role: "T", WWPN: "50:06:0e:80:16:50:5c:00", NodeSymb: "HITACHI", PortSymb: "OPEN-V", PortIndex: "18"},
	}

	var sb strings.Builder
	if err := WriteCSV(&sb, entries); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want header plus one row", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Node,I/f,Subif,Fabric,I/T,WWPN") {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != ",,,A,T,50:06:0e:80:16:50:5c:00,,HITACHI,OPEN-V,18" {
		t.Errorf("row = %q", lines[1])
	}
}
