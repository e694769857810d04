// Package plan derives the per-fabric zoning artifacts from a validated
// device table: single-initiator zoning, one alias/zone/cfg script per
// fabric. Everything is computed in memory so invalid input never leaves
// partial files behind.
package plan

import (
	"fmt"
	"sort"
	"time"

	"github.com/sanops/zonectl/internal/domain/entity"
	"github.com/sanops/zonectl/internal/domain/service"
	"github.com/sanops/zonectl/internal/logger"
	"github.com/sanops/zonectl/internal/script"
)

// Planner builds the dual-fabric pipeline plan. Now is injectable so the
// dated default cfg name stays deterministic under test.
type Planner struct {
	CfgName    string
	ClearFirst bool
	Now        func() time.Time
}

func NewPlanner() *Planner {
	return &Planner{Now: time.Now}
}

func (p *Planner) cfgName() string {
	if p.CfgName != "" {
		return p.CfgName
	}
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	return "cfg" + now().Format("2006-01-02")
}

// Build derives the full plan from validated ports. Fabrics with no ports
// produce no artifacts.
func (p *Planner) Build(ports []entity.DevicePort) *Plan {
	result := &Plan{}
	cfgName := p.cfgName()

	for _, fabric := range []entity.Fabric{entity.FabricA, entity.FabricB} {
		var fabricPorts []entity.DevicePort
		for i := range ports {
			if ports[i].Fabric == fabric {
				fabricPorts = append(fabricPorts, ports[i])
			}
		}
		if len(fabricPorts) == 0 {
			continue
		}

		aliases := deriveFabricAliases(fabricPorts)
		zones := deriveFabricZones(fabricPorts)
		configs := deriveFabricConfig(cfgName, zones)

		prefix := string(fabric)
		result.Artifacts = append(result.Artifacts,
			Artifact{
				Name:    prefix + "fab_ali.txt",
				Content: script.EmitAliases(fmt.Sprintf("Alias create commands for fabric %s", fabric), aliases).Render(),
			},
			Artifact{
				Name:    prefix + "fab_zon.txt",
				Content: script.EmitZones(fmt.Sprintf("Zone create commands for fabric %s", fabric), zones).Render(),
			},
			Artifact{
				Name:    prefix + "fab_cfg.txt",
				Content: script.EmitConfigs(fmt.Sprintf("Switch config commands for fabric %s", fabric), configs, service.EffectiveActive(configs), p.ClearFirst).Render(),
			},
		)

		result.Aliases = append(result.Aliases, aliases...)
		result.Zones = append(result.Zones, zones...)
		result.Configs = append(result.Configs, configs...)

		logger.Debug("planned fabric artifacts",
			"fabric", fabric, "aliases", len(aliases), "zones", len(zones))
	}

	result.Configs = mergeConfigs(result.Configs)

	return result
}

// mergeConfigs folds same-named per-fabric config entries into one: both
// fabric scripts carry the same cfg name, and the catalog must not list it
// twice. The merged entry holds the union of the fabrics' zones.
func mergeConfigs(configs []entity.ZoneConfig) []entity.ZoneConfig {
	var out []entity.ZoneConfig
	index := make(map[string]int)

	for i := range configs {
		c := &configs[i]
		k, ok := index[c.Name]
		if !ok {
			index[c.Name] = len(out)
			out = append(out, entity.ZoneConfig{Name: c.Name})
			k = index[c.Name]
		}
		if c.Active {
			out[k].Active = true
		}
		for _, zone := range c.Zones {
			appendZone(&out[k], zone)
		}
	}

	return out
}

func appendZone(c *entity.ZoneConfig, zone string) {
	for _, z := range c.Zones {
		if z == zone {
			return
		}
	}
	c.Zones = append(c.Zones, zone)
}

func sortPortsByName(ports []entity.DevicePort) {
	sort.SliceStable(ports, func(i, j int) bool {
		a, b := &ports[i], &ports[j]
		if a.Node != b.Node {
			return a.Node < b.Node
		}
		if a.Interface != b.Interface {
			return a.Interface < b.Interface
		}
		return a.SubInterface < b.SubInterface
	})
}

// deriveFabricAliases lists the fabric's aliases in alphabetical device
// order.
func deriveFabricAliases(ports []entity.DevicePort) []entity.Alias {
	sorted := make([]entity.DevicePort, len(ports))
	copy(sorted, ports)
	sortPortsByName(sorted)
	return service.DeriveAliases(sorted)
}

// deriveFabricZones builds single-initiator zones: for every initiator, one
// zone per target node on the same fabric, named
// zon_<node>_<iface>_<targetnode>, holding the initiator alias plus that
// node's target aliases. Initiator sub-interface variants that map to the
// same zone name are merged into one zone.
func deriveFabricZones(ports []entity.DevicePort) []entity.Zone {
	var initiators, targets []entity.DevicePort
	for i := range ports {
		switch ports[i].Role {
		case entity.RoleInitiator:
			initiators = append(initiators, ports[i])
		case entity.RoleTarget:
			targets = append(targets, ports[i])
		}
	}
	sortPortsByName(initiators)
	sortPortsByName(targets)

	var zones []entity.Zone
	index := make(map[string]int)

	for i := range initiators {
		ini := &initiators[i]
		for j := range targets {
			tgt := &targets[j]
			name := fmt.Sprintf("zon_%s_%s_%s", ini.Node, ini.Interface, tgt.Node)

			k, ok := index[name]
			if !ok {
				index[name] = len(zones)
				zones = append(zones, entity.Zone{
					Name:    name,
					Members: []string{ini.AliasName()},
				})
				k = index[name]
			}
			appendMember(&zones[k], ini.AliasName())
			appendMember(&zones[k], tgt.AliasName())
		}
	}

	return zones
}

func appendMember(z *entity.Zone, member string) {
	for _, m := range z.Members {
		if m == member {
			return
		}
	}
	z.Members = append(z.Members, member)
}

func deriveFabricConfig(name string, zones []entity.Zone) []entity.ZoneConfig {
	if len(zones) == 0 {
		return nil
	}
	cfg := entity.ZoneConfig{Name: name, Active: true}
	for i := range zones {
		cfg.Zones = append(cfg.Zones, zones[i].Name)
	}
	return []entity.ZoneConfig{cfg}
}
