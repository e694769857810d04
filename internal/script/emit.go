package script

import (
	"github.com/sanops/zonectl/internal/domain/entity"
)

// EmitAliases renders one aliCreate per table entry, preserving table order.
func EmitAliases(header string, aliases []entity.Alias) *Script {
	s := New(header)
	for i := range aliases {
		s.Add(AliasCreate(aliases[i].Name, aliases[i].WWN))
	}
	return s
}

// EmitZones renders zoneCreate for the first member of each zone and zoneAdd
// for the rest, in table order.
func EmitZones(header string, zones []entity.Zone) *Script {
	s := New(header)
	for i := range zones {
		z := &zones[i]
		for j, member := range z.Members {
			if j == 0 {
				s.Add(ZoneCreate(z.Name, member))
			} else {
				s.Add(ZoneAdd(z.Name, member))
			}
		}
	}
	return s
}

// EmitConfigs renders the cfg block: optional cfgClear/cfgDisable preamble,
// cfgCreate/cfgAdd per config, cfgSave, then cfgEnable for the effective
// active config when there is one.
func EmitConfigs(header string, configs []entity.ZoneConfig, active *entity.ZoneConfig, clearFirst bool) *Script {
	s := New(header)
	if clearFirst {
		s.Add(CfgClear, CfgDisable)
	}
	for i := range configs {
		c := &configs[i]
		for j, zone := range c.Zones {
			if j == 0 {
				s.Add(CfgCreate(c.Name, zone))
			} else {
				s.Add(CfgAdd(c.Name, zone))
			}
		}
	}
	s.Add(CfgSave)
	if active != nil {
		s.Add(CfgEnable(active.Name))
	}
	return s
}
