package script

import (
	"testing"

	"github.com/sanops/zonectl/internal/domain/entity"
)

func TestCommandFormatting(t *testing.T) {
	if got := AliasCreate("ali_web1_fc0_FA", "50:06:0e:80:16:50:5c:00"); got != `aliCreate "ali_web1_fc0_FA", "50:06:0e:80:16:50:5c:00"` {
		t.Errorf("AliasCreate() = %q", got)
	}
	if got := ZoneCreate("zon_a", "ali_a"); got != `zoneCreate "zon_a", "ali_a"` {
		t.Errorf("ZoneCreate() = %q", got)
	}
	if got := ZoneAdd("zon_a", "ali_b"); got != `zoneAdd    "zon_a", "ali_b"` {
		t.Errorf("ZoneAdd() = %q", got)
	}
	if got := CfgCreate("cfg_prod", "zon_a"); got != `cfgCreate "cfg_prod", "zon_a"` {
		t.Errorf("CfgCreate() = %q", got)
	}
	if got := CfgAdd("cfg_prod", "zon_b"); got != `cfgAdd    "cfg_prod", "zon_b"` {
		t.Errorf("CfgAdd() = %q", got)
	}
	if got := CfgEnable("cfg_prod"); got != `cfgEnable "cfg_prod"` {
		t.Errorf("CfgEnable() = %q", got)
	}
}

func TestEmitAliases(t *testing.T) {
	aliases := []entity.Alias{
		{Name: "ali_b", WWN: "50:06:0e:80:16:50:5c:01"},
		{Name: "ali_a", WWN: "50:06:0e:80:16:50:5c:00"},
	}

	got := EmitAliases("Alias create commands", aliases).Render()
	want := "# Alias create commands\n" +
		"aliCreate \"ali_b\", \"50:06:0e:80:16:50:5c:01\"\n" +
		"aliCreate \"ali_a\", \"50:06:0e:80:16:50:5c:00\"\n"
	if got != want {
		t.Errorf("EmitAliases() = %q, want %q", got, want)
	}
}

func TestEmitZones(t *testing.T) {
	zones := []entity.Zone{
		{Name: "zon_a", Members: []string{"ali_i", "ali_t1", "ali_t2"}},
		{Name: "zon_b", Members: []string{"ali_i"}},
	}

	got := EmitZones("Zone create commands", zones).Render()
	want := "# Zone create commands\n" +
		"zoneCreate \"zon_a\", \"ali_i\"\n" +
		"zoneAdd    \"zon_a\", \"ali_t1\"\n" +
		"zoneAdd    \"zon_a\", \"ali_t2\"\n" +
		"zoneCreate \"zon_b\", \"ali_i\"\n"
	if got != want {
		t.Errorf("EmitZones() = %q, want %q", got, want)
	}
}

func TestEmitConfigs(t *testing.T) {
	configs := []entity.ZoneConfig{
		{Name: "cfg_prod", Zones: []string{"zon_a", "zon_b"}, Active: true},
	}

	got := EmitConfigs("Switch config commands", configs, &configs[0], true).Render()
	want := "# Switch config commands\n" +
		"cfgClear\n" +
		"cfgDisable\n" +
		"cfgCreate \"cfg_prod\", \"zon_a\"\n" +
		"cfgAdd    \"cfg_prod\", \"zon_b\"\n" +
		"cfgSave\n" +
		"cfgEnable \"cfg_prod\"\n"
	if got != want {
		t.Errorf("EmitConfigs() = %q, want %q", got, want)
	}
}

func TestEmitConfigsNoActive(t *testing.T) {
	configs := []entity.ZoneConfig{
		{Name: "cfg_a", Zones: []string{"zon_a"}},
		{Name: "cfg_b", Zones: []string{"zon_b"}},
	}

	got := EmitConfigs("Switch config commands", configs, nil, false).Render()
	want := "# Switch config commands\n" +
		"cfgCreate \"cfg_a\", \"zon_a\"\n" +
		"cfgCreate \"cfg_b\", \"zon_b\"\n" +
		"cfgSave\n"
	if got != want {
		t.Errorf("EmitConfigs() = %q, want %q", got, want)
	}
}
