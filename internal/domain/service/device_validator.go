package service

import (
	"sort"

	"github.com/sanops/zonectl/internal/domain/entity"
	"github.com/sanops/zonectl/internal/domain/valueobject"
	"github.com/sanops/zonectl/internal/validation"
)

// WWNMode selects how WWN text is checked.
type WWNMode int

const (
	// WWNStrict accepts only the canonical colon-separated form.
	WWNStrict WWNMode = iota
	// WWNLoose extracts 16 hex digits from any formatting.
	WWNLoose
)

// DeviceValidator turns raw device records into validated DevicePorts,
// collecting every problem instead of stopping at the first. CableCheck adds
// advisory warnings when fabric indicators do not alternate across rows
// sorted by name and WWPN, which usually means a cabling or naming mistake.
type DeviceValidator struct {
	Mode       WWNMode
	CableCheck bool
}

// Validate returns the validated ports in input order together with the full
// report. Ports are only usable when the report has no errors.
func (dv *DeviceValidator) Validate(source string, records []entity.DeviceRecord) ([]entity.DevicePort, *validation.Report) {
	report := validation.NewReport(source)
	ports := make([]entity.DevicePort, 0, len(records))

	for _, rec := range records {
		port := entity.DevicePort{
			Node:         rec.Node,
			Interface:    rec.Interface,
			SubInterface: rec.SubInterface,
			Fabric:       entity.Fabric(rec.Fabric),
			Role:         entity.Role(rec.Role),
			Row:          rec.Row,
		}

		wwpn, err := dv.parseWWN(rec.WWPN)
		if err != nil {
			report.Errorf(rec.Row, "wwpn", "%v", err)
		} else {
			port.WWPN = wwpn
		}

		// WWNN is documentation only but still has to be well formed
		// when present.
		if rec.WWNN != "" {
			wwnn, err := dv.parseWWN(rec.WWNN)
			if err != nil {
				report.Errorf(rec.Row, "wwnn", "%v", err)
			} else {
				port.WWNN = wwnn
			}
		}

		if err := port.Fabric.Validate(); err != nil {
			report.Errorf(rec.Row, "fabric", "%v", err)
		}
		if err := port.Role.Validate(); err != nil {
			report.Errorf(rec.Row, "role", "%v", err)
		}
		if err := entity.ValidateObjectName(port.AliasName()); err != nil {
			report.Errorf(rec.Row, "name", "derived alias: %v", err)
		}

		ports = append(ports, port)
	}

	dv.checkDuplicates(report, ports)
	if dv.CableCheck {
		checkCabling(report, ports)
	}

	return ports, report
}

func (dv *DeviceValidator) parseWWN(s string) (valueobject.WWN, error) {
	if dv.Mode == WWNLoose {
		return valueobject.ParseLoose(s)
	}
	return valueobject.ParseStrict(s)
}

// checkDuplicates keys on the derived alias name, not the raw name columns:
// distinct column values can still collapse to the same alias ("a_b"/"c" and
// "a"/"b_c"), and a reused alias silently rebinds storage to the wrong WWN.
func (dv *DeviceValidator) checkDuplicates(report *validation.Report, ports []entity.DevicePort) {
	byWWN := make(map[string][]int)
	byAlias := make(map[string][]int)
	for i := range ports {
		p := &ports[i]
		if !p.WWPN.IsZero() {
			byWWN[p.WWPN.String()] = append(byWWN[p.WWPN.String()], p.Row)
		}
		byAlias[p.AliasName()] = append(byAlias[p.AliasName()], p.Row)
	}

	reportDuplicates(report, byWWN, "wwpn", "duplicate WWPN %q on rows %v")
	reportDuplicates(report, byAlias, "name", "duplicate derived alias %q on rows %v")
}

// checkCabling sorts rows by the three name columns plus WWPN. Consistent
// naming with vendor-sequential WWPNs makes the fabric indicator alternate
// A/B; two equal indicators in a row hint at a swapped cable.
func checkCabling(report *validation.Report, ports []entity.DevicePort) {
	sorted := make([]entity.DevicePort, len(ports))
	copy(sorted, ports)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := &sorted[i], &sorted[j]
		if a.Node != b.Node {
			return a.Node < b.Node
		}
		if a.Interface != b.Interface {
			return a.Interface < b.Interface
		}
		if a.SubInterface != b.SubInterface {
			return a.SubInterface < b.SubInterface
		}
		return a.WWPN < b.WWPN
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Fabric == sorted[i-1].Fabric {
			report.Warnf(sorted[i].Row, "fabric",
				"possible cable issue: %q and %q are both on fabric %s",
				sorted[i-1].AliasName(), sorted[i].AliasName(), sorted[i].Fabric)
		}
	}
}

// DeriveAliases maps validated ports to the alias table, preserving input
// order.
func DeriveAliases(ports []entity.DevicePort) []entity.Alias {
	aliases := make([]entity.Alias, 0, len(ports))
	for i := range ports {
		p := &ports[i]
		aliases = append(aliases, entity.Alias{
			Name: p.AliasName(),
			WWN:  p.WWPN,
			Row:  p.Row,
		})
	}
	return aliases
}
