package service

import (
	"sort"

	"github.com/sanops/zonectl/internal/domain/entity"
	"github.com/sanops/zonectl/internal/validation"
)

// Validator runs the referential and uniqueness checks for zone and config
// tables against the alias/zone tables they reference. All findings are
// aggregated; emission only happens when the combined report has no errors.
type Validator struct {
	catalog *entity.Catalog
	aliases map[string]*entity.Alias
	zones   map[string]*entity.Zone
}

func NewValidator(catalog *entity.Catalog) *Validator {
	if catalog == nil {
		catalog = &entity.Catalog{}
	}
	return &Validator{
		catalog: catalog,
		aliases: catalog.GetAliasMap(),
		zones:   catalog.GetZoneMap(),
	}
}

// ValidateAliases checks a freshly derived alias table: per-entity rules plus
// name and WWN uniqueness. Duplicates report every involved row.
func (v *Validator) ValidateAliases(source string, aliases []entity.Alias) *validation.Report {
	report := validation.NewReport(source)

	byName := make(map[string][]int)
	byWWN := make(map[string][]int)
	for i := range aliases {
		a := &aliases[i]
		if err := a.Validate(); err != nil {
			report.Errorf(a.Row, "alias", "%v", err)
			continue
		}
		byName[a.Name] = append(byName[a.Name], a.Row)
		byWWN[a.WWN.String()] = append(byWWN[a.WWN.String()], a.Row)
	}

	reportDuplicates(report, byName, "alias", "alias name %q defined on rows %v")
	reportDuplicates(report, byWWN, "wwn", "WWN %q bound on rows %v")

	return report
}

// ValidateZones checks a zone table against the alias table.
func (v *Validator) ValidateZones(source string, zones []entity.Zone) *validation.Report {
	report := validation.NewReport(source)

	byName := make(map[string][]int)
	for i := range zones {
		z := &zones[i]
		if err := z.Validate(); err != nil {
			report.Errorf(z.Row, "zone", "%v", err)
			continue
		}
		byName[z.Name] = append(byName[z.Name], z.Row)

		seen := make(map[string]bool, len(z.Members))
		for _, member := range z.Members {
			if seen[member] {
				report.Warnf(z.Row, "member", "alias %q listed more than once in zone %q", member, z.Name)
				continue
			}
			seen[member] = true
			if _, ok := v.aliases[member]; !ok {
				report.Errorf(z.Row, "member", "zone %q references unknown alias %q", z.Name, member)
			}
		}
	}

	reportDuplicates(report, byName, "zone", "zone name %q defined on rows %v")

	return report
}

// ValidateConfigs checks a config table against the zone table. Multiple
// active configs are advisory: switch-side only one can be enabled, and the
// first listed wins.
func (v *Validator) ValidateConfigs(source string, configs []entity.ZoneConfig) *validation.Report {
	report := validation.NewReport(source)

	byName := make(map[string][]int)
	var activeNames []string
	for i := range configs {
		c := &configs[i]
		if err := c.Validate(); err != nil {
			report.Errorf(c.Row, "cfg", "%v", err)
			continue
		}
		byName[c.Name] = append(byName[c.Name], c.Row)

		for _, zone := range c.Zones {
			if _, ok := v.zones[zone]; !ok {
				report.Errorf(c.Row, "zone", "cfg %q references unknown zone %q", c.Name, zone)
			}
		}
		if c.Active {
			activeNames = append(activeNames, c.Name)
		}
	}

	reportDuplicates(report, byName, "cfg", "cfg name %q defined on rows %v")

	if len(activeNames) > 1 {
		report.Warnf(0, "active", "%d configs marked active (%v); first listed %q will be enabled",
			len(activeNames), activeNames, activeNames[0])
	}

	return report
}

// EffectiveActive picks the config whose enable command is emitted: the first
// listed config marked active, or the only config when none is marked. With
// several unmarked configs the choice is left to the administrator.
func EffectiveActive(configs []entity.ZoneConfig) *entity.ZoneConfig {
	for i := range configs {
		if configs[i].Active {
			return &configs[i]
		}
	}
	if len(configs) == 1 {
		return &configs[0]
	}
	return nil
}

func reportDuplicates(report *validation.Report, index map[string][]int, field, format string) {
	names := make([]string, 0, len(index))
	for name, rows := range index {
		if len(rows) > 1 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		report.Errorf(0, field, format, name, index[name])
	}
}
