package persistence

import (
	"errors"
	"testing"

	"github.com/sanops/zonectl/internal/domain"
)

func TestLoadZones(t *testing.T) {
	yaml := `zones:
  - name: zon_web1_fc0_arr1
    members:
      - ali_web1_fc0_FA
      - ali_arr1_cA_FA
  - name: zon_web1_fc1_arr1
    members: [ali_web1_fc1_FB, ali_arr1_cB_FB]
`
	path := writeTemp(t, "zones.yaml", yaml)

	zones, err := LoadZones(path)
	if err != nil {
		t.Fatalf("LoadZones() error = %v", err)
	}
	if len(zones) != 2 {
		t.Fatalf("zones = %d, want 2", len(zones))
	}
	if zones[0].Name != "zon_web1_fc0_arr1" {
		t.Errorf("name = %q", zones[0].Name)
	}
	if len(zones[0].Members) != 2 || zones[0].Members[0] != "ali_web1_fc0_FA" {
		t.Errorf("members = %v", zones[0].Members)
	}
	if zones[0].Row != 2 {
		t.Errorf("Row = %d, want source line 2", zones[0].Row)
	}
	if zones[1].Row != 6 {
		t.Errorf("Row = %d, want source line 6", zones[1].Row)
	}
}

func TestLoadConfigs(t *testing.T) {
	yaml := `configs:
  - name: cfg_prod
    zones: [zon_a, zon_b]
    active: true
  - name: cfg_dr
    zones: [zon_c]
`
	path := writeTemp(t, "configs.yaml", yaml)

	configs, err := LoadConfigs(path)
	if err != nil {
		t.Fatalf("LoadConfigs() error = %v", err)
	}
	if len(configs) != 2 {
		t.Fatalf("configs = %d, want 2", len(configs))
	}
	if !configs[0].Active || configs[1].Active {
		t.Errorf("active flags wrong: %+v", configs)
	}
	if configs[0].Zones[1] != "zon_b" {
		t.Errorf("zones = %v", configs[0].Zones)
	}
}

func TestLoadZonesMissingKey(t *testing.T) {
	path := writeTemp(t, "zones.yaml", "other: []\n")

	zones, err := LoadZones(path)
	if err != nil {
		t.Fatalf("LoadZones() error = %v", err)
	}
	if zones != nil {
		t.Errorf("zones = %v, want nil for missing key", zones)
	}
}

func TestLoadZonesBadYAML(t *testing.T) {
	path := writeTemp(t, "zones.yaml", "zones: [unclosed\n")

	_, err := LoadZones(path)
	if !errors.Is(err, domain.ErrTableParseFailed) {
		t.Errorf("error = %v, want %v", err, domain.ErrTableParseFailed)
	}
}
